package request

import "strings"

// SessionUpdateRequest is the payload of PUT /v1/session (sign-in or
// company switch).
type SessionUpdateRequest struct {
	Token     string `json:"token" binding:"required"`
	CompanyID string `json:"companyId" binding:"required"`
}

func (r SessionUpdateRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}

func (r SessionUpdateRequest) ResolveCompanyID() string {
	return strings.TrimSpace(r.CompanyID)
}
