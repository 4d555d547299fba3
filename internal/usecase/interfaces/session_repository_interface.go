package interfaces

import (
	"context"

	"facturacion_movil/internal/domain/entities"
)

// ISessionRepository abstracts persistence of the single active AuthSession.
//
// The session store must be able to:
//   - reload the last session at process start
//   - replace it on sign-in / company switch
//   - wipe it on sign-out
type ISessionRepository interface {
	// Load returns the persisted session, or a zero session when none exists.
	Load(ctx context.Context) (entities.AuthSession, error)
	Save(ctx context.Context, s entities.AuthSession) error
	Delete(ctx context.Context) error
}
