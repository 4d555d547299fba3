package usecase

import (
	"errors"
	"strings"
	"time"

	"facturacion_movil/internal/domain/entities"
)

var (
	ErrMissingClient     = errors.New("missing client")
	ErrClientMissingCode = errors.New("client is missing the tax id code")
	ErrClientMissingName = errors.New("client is missing the name")
	ErrNoProductLines    = errors.New("no product lines")
	ErrMissingTicketType = errors.New("missing ticket type code")
	ErrInvalidDate       = errors.New("invalid document date")
)

// Walk-in receiver substituted on tickets without an identified client.
const (
	FinalConsumerCode = "66666666-6"
	FinalConsumerName = "Consumidor Final"
)

const documentDateLayout = "2006-01-02"

// DocumentOptions are the per-submission knobs a caller can set. Date
// defaults to today; TicketType defaults to the boleta electrónica code.
type DocumentOptions struct {
	Date          string
	TicketType    string
	ExternalFolio string
}

// FormatInvoice converts loose client/product selections into the exact
// invoice wire shape, rejecting clearly invalid submissions before any
// network call is made.
func FormatInvoice(client *entities.Client, products []entities.Product, opts DocumentOptions) (entities.InvoiceSubmission, error) {
	if err := ValidateInvoiceInput(client, products); err != nil {
		return entities.InvoiceSubmission{}, err
	}
	date, err := resolveDate(opts.Date)
	if err != nil {
		return entities.InvoiceSubmission{}, err
	}

	return entities.InvoiceSubmission{
		Client: entities.SubmissionClient{
			Code:         strings.TrimSpace(client.Code),
			Name:         strings.TrimSpace(client.Name),
			Address:      client.Address,
			Municipality: client.Municipality,
			Line:         client.Line,
			Email:        client.Email,
		},
		Date:          date,
		ExternalFolio: opts.ExternalFolio,
		Details:       formatLines(products),
	}, nil
}

// FormatTicket is the boleta counterpart. The client is optional: absent,
// the final-consumer defaults are substituted.
func FormatTicket(client *entities.Client, products []entities.Product, opts DocumentOptions) (entities.TicketSubmission, error) {
	ticketType := strings.TrimSpace(opts.TicketType)
	if ticketType == "" {
		ticketType = entities.DocumentTypeTicket
	}
	if err := ValidateTicketInput(products, ticketType); err != nil {
		return entities.TicketSubmission{}, err
	}
	date, err := resolveDate(opts.Date)
	if err != nil {
		return entities.TicketSubmission{}, err
	}

	receiver := entities.SubmissionClient{Code: FinalConsumerCode, Name: FinalConsumerName}
	if client != nil {
		receiver = entities.SubmissionClient{
			Code:         strings.TrimSpace(client.Code),
			Name:         strings.TrimSpace(client.Name),
			Address:      client.Address,
			Municipality: client.Municipality,
			Line:         client.Line,
			Email:        client.Email,
		}
		if receiver.Code == "" {
			receiver.Code = FinalConsumerCode
		}
		if receiver.Name == "" {
			receiver.Name = FinalConsumerName
		}
	}

	return entities.TicketSubmission{
		TicketType: ticketType,
		Client:     receiver,
		Date:       date,
		Details:    formatLines(products),
	}, nil
}

// ValidateInvoiceInput runs the pre-submission checks for an invoice. Each
// failure is a distinct sentinel so callers can show which field is missing.
func ValidateInvoiceInput(client *entities.Client, products []entities.Product) error {
	if client == nil {
		return ErrMissingClient
	}
	if strings.TrimSpace(client.Code) == "" {
		return ErrClientMissingCode
	}
	if strings.TrimSpace(client.Name) == "" {
		return ErrClientMissingName
	}
	if len(products) == 0 {
		return ErrNoProductLines
	}
	return nil
}

// ValidateTicketInput runs the pre-submission checks for a boleta.
func ValidateTicketInput(products []entities.Product, ticketType string) error {
	if len(products) == 0 {
		return ErrNoProductLines
	}
	if strings.TrimSpace(ticketType) == "" {
		return ErrMissingTicketType
	}
	return nil
}

func formatLines(products []entities.Product) []entities.DocumentLine {
	lines := make([]entities.DocumentLine, 0, len(products))
	for i, p := range products {
		lp := entities.LineProduct{
			Code:     p.Code,
			Name:     p.Name,
			Price:    p.Price,
			Unit:     p.Unit,
			OtherTax: lineOtherTax(p),
		}
		if p.Category != nil {
			lp.Category = p.Category.Name
		}
		lines = append(lines, entities.DocumentLine{Position: i + 1, Product: lp})
	}
	return lines
}

// lineOtherTax resolves the additional-tax percent for a line. The
// category-level otherTax percent wins; the product-level decimal rate
// (times 100) is the fallback.
func lineOtherTax(p entities.Product) *entities.LineOtherTax {
	if p.Category != nil && p.Category.OtherTax != nil && p.Category.OtherTax.Percent > 0 {
		return &entities.LineOtherTax{
			Code:    p.Category.OtherTax.Code,
			Percent: p.Category.OtherTax.Percent,
		}
	}
	if p.AdditionalTax != nil && p.AdditionalTax.Rate > 0 {
		return &entities.LineOtherTax{
			Code:    p.AdditionalTax.Code,
			Percent: p.AdditionalTax.Rate * 100,
		}
	}
	return nil
}

func resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format(documentDateLayout), nil
	}
	if _, err := time.Parse(documentDateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}
