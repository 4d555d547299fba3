package response

import (
	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
)

// DocumentResponse is the issued-document shape returned to POS clients.
type DocumentResponse struct {
	ID            int64   `json:"id"`
	Type          string  `json:"type,omitempty"`
	AssignedFolio string  `json:"assignedFolio"`
	ExternalFolio string  `json:"externalFolio,omitempty"`
	Date          string  `json:"date,omitempty"`
	StateCode     string  `json:"stateCode,omitempty"`
	StateLabel    string  `json:"stateLabel,omitempty"`
	ClientCode    string  `json:"clientCode,omitempty"`
	ClientName    string  `json:"clientName,omitempty"`
	Total         float64 `json:"total,omitempty"`
	Validation    string  `json:"validation,omitempty"`
}

func FromDocument(d entities.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:            d.ID,
		Type:          d.Type,
		AssignedFolio: d.AssignedFolio,
		ExternalFolio: d.ExternalFolio,
		Date:          d.Date,
		StateCode:     d.State.Code,
		StateLabel:    d.State.Label,
		Total:         d.Total,
		Validation:    d.Validation,
	}
	if d.Client != nil {
		resp.ClientCode = d.Client.Code
		resp.ClientName = d.Client.Name
	}
	return resp
}

// DocumentDetailResponse wraps a single resolved document with its cache
// provenance.
type DocumentDetailResponse struct {
	Document entities.Document `json:"document"`
	Source   string            `json:"source"`
	Stale    bool              `json:"stale"`
}

func FromDocumentResult(res cache.Result[entities.Document]) DocumentDetailResponse {
	return DocumentDetailResponse{
		Document: res.Value,
		Source:   string(res.Tier),
		Stale:    res.Stale,
	}
}

// SalesListResponse is the recent-sales listing. Source says which cache
// tier (or the network) served it; Stale flags a persistent fallback served
// because the upstream was unreachable.
type SalesListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Source    string             `json:"source"`
	Stale     bool               `json:"stale"`
}

func FromSalesResult(res cache.Result[[]entities.Document]) SalesListResponse {
	docs := make([]DocumentResponse, 0, len(res.Value))
	for _, d := range res.Value {
		docs = append(docs, FromDocument(d))
	}
	return SalesListResponse{
		Documents: docs,
		Source:    string(res.Tier),
		Stale:     res.Stale,
	}
}

// PDFURLResponse carries the composed public PDF link.
type PDFURLResponse struct {
	URL string `json:"url"`
}
