package response

import "facturacion_movil/internal/domain/entities"

// SessionResponse acknowledges a session change. The token itself is never
// echoed back.
type SessionResponse struct {
	CompanyID string `json:"companyId"`
	Active    bool   `json:"active"`
}

func FromSession(s entities.AuthSession) SessionResponse {
	return SessionResponse{CompanyID: s.CompanyID, Active: !s.IsZero()}
}
