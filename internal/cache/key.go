package cache

import "strconv"

// Kind identifies the entity family a cached response belongs to. Keys are
// built here and nowhere else so filters can never collide across kinds and
// kind-wide invalidation stays a single prefix operation.
type Kind string

const (
	KindProducts     Kind = "products"
	KindClients      Kind = "clients"
	KindSales        Kind = "sales"
	KindInvoiceFolio Kind = "invoice:folio"
	KindInvoiceID    Kind = "invoice:id"
)

// Key is a structured cache key: an entity kind plus an optional filter
// (search term, folio, document id).
type Key struct {
	Kind   Kind
	Filter string
}

// String renders the canonical persisted form: "products", "products/ana",
// "invoice:folio/1234".
func (k Key) String() string {
	if k.Filter == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + "/" + k.Filter
}

// Prefix is the string all keys of a kind share, used for kind-wide purges.
func (k Kind) Prefix() string {
	return string(k)
}

func ProductsKey(term string) Key {
	return Key{Kind: KindProducts, Filter: term}
}

func ClientsKey(term string) Key {
	return Key{Kind: KindClients, Filter: term}
}

func SalesKey() Key {
	return Key{Kind: KindSales}
}

func InvoiceFolioKey(folio string) Key {
	return Key{Kind: KindInvoiceFolio, Filter: folio}
}

func InvoiceIDKey(id int64) Key {
	return Key{Kind: KindInvoiceID, Filter: strconv.FormatInt(id, 10)}
}
