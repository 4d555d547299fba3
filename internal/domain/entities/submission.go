package entities

// Write-only wire shapes for document submission. These exist only for the
// duration of one POST to the invoicing API; they are never cached or
// persisted.

// LineOtherTax is the additional-tax annotation on a submitted line. Percent
// is a whole percentage (19 means 19%).
type LineOtherTax struct {
	Code    string  `json:"code,omitempty"`
	Percent float64 `json:"percent"`
}

// LineProduct is the product snapshot embedded in a document line.
type LineProduct struct {
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Unit     string        `json:"unit,omitempty"`
	Category string        `json:"category,omitempty"`
	OtherTax *LineOtherTax `json:"otherTax,omitempty"`
}

// DocumentLine is one item of an invoice or ticket. Position is 1-based.
type DocumentLine struct {
	Position int         `json:"position"`
	Product  LineProduct `json:"product"`
}

// SubmissionClient is the receiver block of a submission. For tickets without
// an identified client the final-consumer defaults are substituted.
type SubmissionClient struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Line         string `json:"line,omitempty"`
	Email        string `json:"email,omitempty"`
}

// InvoiceSubmission is the body of POST /services/raw/company/<id>/invoice.
type InvoiceSubmission struct {
	Client        SubmissionClient `json:"client"`
	Date          string           `json:"date"`
	ExternalFolio string           `json:"externalFolio,omitempty"`
	Details       []DocumentLine   `json:"details"`
}

// TicketSubmission is the body of POST /services/raw/company/<id>/ticket.
type TicketSubmission struct {
	TicketType string           `json:"ticketType"`
	Client     SubmissionClient `json:"client"`
	Date       string           `json:"date"`
	Details    []DocumentLine   `json:"details"`
}
