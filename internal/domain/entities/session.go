package entities

import "time"

// AuthSession is the identity every outbound request is made under: the
// bearer token for the auth header and the active company the document
// endpoints are scoped to.
//
// Exactly one session is active at a time. When no user session has been
// persisted the service operates under a fallback static token/company pair,
// so Token and CompanyID are never both empty on an outgoing request.
type AuthSession struct {
	Token     string    `json:"token"`
	CompanyID string    `json:"companyId"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// IsZero reports whether the session carries no identity at all.
func (s AuthSession) IsZero() bool {
	return s.Token == "" && s.CompanyID == ""
}
