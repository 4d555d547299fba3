package entities

import (
	"encoding/json"
	"fmt"
)

// Electronic tax document type codes (SII).
const (
	DocumentTypeInvoice = "33" // factura electrónica afecta
	DocumentTypeTicket  = "39" // boleta electrónica
)

// DocumentState is the [code, label] pair the invoicing API returns for a
// document's lifecycle state, e.g. ["ACE", "Aceptado"]. Some backends emit
// the code as a number, so decoding accepts both.
type DocumentState struct {
	Code  string
	Label string
}

func (s *DocumentState) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("document state is not an array: %w", err)
	}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts[0], &s.Code); err != nil {
			var n json.Number
			if err := json.Unmarshal(parts[0], &n); err != nil {
				return fmt.Errorf("document state code: %w", err)
			}
			s.Code = n.String()
		}
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &s.Label); err != nil {
			return fmt.Errorf("document state label: %w", err)
		}
	}
	return nil
}

func (s DocumentState) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Code, s.Label})
}

// Document is an issued invoice or ticket as held by the invoicing backend.
//
// Domain notes:
//   - AssignedFolio is the government-assigned sequential number (folio).
//   - Validation is the code required to compose the public PDF URL.
//   - Documents are created server-side on submission and never mutated by
//     this service.
type Document struct {
	ID            int64          `json:"id"`
	Type          string         `json:"type,omitempty"`
	AssignedFolio string         `json:"assignedFolio"`
	ExternalFolio string         `json:"externalFolio,omitempty"`
	Date          string         `json:"date,omitempty"`
	State         DocumentState  `json:"state,omitempty"`
	Client        *Client        `json:"client,omitempty"`
	Total         float64        `json:"total,omitempty"`
	Validation    string         `json:"validation,omitempty"`
	Details       []DocumentLine `json:"details,omitempty"`
}
