package request

import (
	"strings"

	"facturacion_movil/internal/domain/entities"

	"github.com/google/uuid"
)

// ClientPayload is the loose client block a POS screen submits. It may be a
// catalog client (ID set) or an ad-hoc draft typed at the counter.
type ClientPayload struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Municipality string `json:"municipality"`
	Activity     string `json:"activity"`
	Line         string `json:"line"`
}

// ToEntity converts the payload, tagging counter-typed clients with a draft
// id. Drafts live only inside the submission; they are never cached.
func (p *ClientPayload) ToEntity() *entities.Client {
	if p == nil {
		return nil
	}
	c := &entities.Client{
		ID:           p.ID,
		Code:         strings.TrimSpace(p.Code),
		Name:         strings.TrimSpace(p.Name),
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		Municipality: p.Municipality,
		Activity:     p.Activity,
		Line:         p.Line,
	}
	if c.ID == 0 {
		c.DraftID = uuid.NewString()
	}
	return c
}

type CategoryPayload struct {
	ID       int64            `json:"id"`
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	OtherTax *OtherTaxPayload `json:"otherTax"`
}

type OtherTaxPayload struct {
	ID      int64   `json:"id"`
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type AdditionalTaxPayload struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// ProductPayload is one selected product line as held by UI state.
type ProductPayload struct {
	ID            int64                 `json:"id"`
	Code          string                `json:"code" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Price         float64               `json:"price"`
	Unit          string                `json:"unit"`
	Category      *CategoryPayload      `json:"category"`
	AdditionalTax *AdditionalTaxPayload `json:"additionalTax"`
}

func (p ProductPayload) ToEntity() entities.Product {
	e := entities.Product{
		ID:    p.ID,
		Code:  p.Code,
		Name:  p.Name,
		Price: p.Price,
		Unit:  p.Unit,
	}
	if p.Category != nil {
		e.Category = &entities.ProductCategory{
			ID:   p.Category.ID,
			Code: p.Category.Code,
			Name: p.Category.Name,
		}
		if p.Category.OtherTax != nil {
			e.Category.OtherTax = &entities.OtherTax{
				ID:      p.Category.OtherTax.ID,
				Code:    p.Category.OtherTax.Code,
				Name:    p.Category.OtherTax.Name,
				Percent: p.Category.OtherTax.Percent,
			}
		}
	}
	if p.AdditionalTax != nil {
		e.AdditionalTax = &entities.AdditionalTax{
			Code: p.AdditionalTax.Code,
			Rate: p.AdditionalTax.Rate,
		}
	}
	return e
}

// InvoiceCreateRequest is the payload of POST /v1/invoices.
type InvoiceCreateRequest struct {
	Client        *ClientPayload   `json:"client"`
	Products      []ProductPayload `json:"products"`
	Date          string           `json:"date"`
	ExternalFolio string           `json:"externalFolio"`
}

func (r InvoiceCreateRequest) ResolveProducts() []entities.Product {
	return toProductEntities(r.Products)
}

// TicketCreateRequest is the payload of POST /v1/tickets. Client is
// optional; a missing client issues the boleta to the final consumer.
type TicketCreateRequest struct {
	Client     *ClientPayload   `json:"client"`
	Products   []ProductPayload `json:"products"`
	Date       string           `json:"date"`
	TicketType string           `json:"ticketType"`
}

func (r TicketCreateRequest) ResolveProducts() []entities.Product {
	return toProductEntities(r.Products)
}

func toProductEntities(payloads []ProductPayload) []entities.Product {
	if len(payloads) == 0 {
		return nil
	}
	products := make([]entities.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, p.ToEntity())
	}
	return products
}
