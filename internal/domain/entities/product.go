package entities

// OtherTax is an additional percentage tax attached to a product category
// (e.g. alcoholic beverages surcharge). Percent is expressed as a whole
// percentage: 19 means 19%.
type OtherTax struct {
	ID      int64   `json:"id,omitempty"`
	Code    string  `json:"code,omitempty"`
	Name    string  `json:"name,omitempty"`
	Percent float64 `json:"percent"`
}

// ProductCategory groups products; it may carry a category-wide OtherTax.
type ProductCategory struct {
	ID       int64     `json:"id,omitempty"`
	Code     string    `json:"code,omitempty"`
	Name     string    `json:"name"`
	OtherTax *OtherTax `json:"otherTax,omitempty"`
}

// AdditionalTax is an ad-hoc per-product surcharge annotation. Rate is a
// decimal fraction: 0.05 means 5%. When the product's category carries an
// OtherTax, the category-level percent wins over this rate.
type AdditionalTax struct {
	Code string  `json:"code,omitempty"`
	Rate float64 `json:"rate"`
}

// Product is a sellable item from the remote catalog. Read-only: the service
// lists and caches products but never mutates them upstream.
type Product struct {
	ID            int64            `json:"id,omitempty"`
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Price         float64          `json:"price"`
	Unit          string           `json:"unit,omitempty"`
	Category      *ProductCategory `json:"category,omitempty"`
	AdditionalTax *AdditionalTax   `json:"additionalTax,omitempty"`
}
