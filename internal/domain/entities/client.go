package entities

// Client is a billing receiver as returned by the invoicing API.
//
// Domain notes:
//   - Code is the Chilean tax id (RUT), e.g. "76543210-K".
//   - Clients are read-only from this service's perspective: they are sourced
//     from the remote catalog and never written back. Locally drafted clients
//     (DraftID set, ID zero) exist only inside a submission and are never
//     merged into the cache.

type Client struct {
	ID           int64  `json:"id,omitempty"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Activity     string `json:"activity,omitempty"`
	Line         string `json:"line,omitempty"`

	// DraftID marks a locally constructed client that has no remote identity.
	DraftID string `json:"-"`
}
