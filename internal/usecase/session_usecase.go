package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionToken   = errors.New("invalid session token")
	ErrInvalidSessionCompany = errors.New("invalid session company id")
)

// ISessionUseCase is the auth/identity store: it owns the active bearer
// token and company id every outbound request is made under.

type ISessionUseCase interface {
	Initialize(ctx context.Context) error
	Current() entities.AuthSession
	Update(ctx context.Context, token, companyID string) error
	Clear(ctx context.Context) error
}

// SessionUseCase holds the active session behind a mutex and keeps it in
// sync with the session repository. Update and Clear purge the response
// cache: cached responses are implicitly scoped to the previous identity.
type SessionUseCase struct {
	repo     interfaces.ISessionRepository
	cache    *cache.TieredCache
	fallback entities.AuthSession

	mu          sync.RWMutex
	current     entities.AuthSession
	initialized bool
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, tc *cache.TieredCache, fallback entities.AuthSession) *SessionUseCase {
	return &SessionUseCase{repo: repo, cache: tc, fallback: fallback}
}

// FallbackSessionFromEnv builds the static token/company pair used when no
// user session has been persisted.
func FallbackSessionFromEnv() entities.AuthSession {
	return entities.AuthSession{
		Token:     getenvDefault("FALLBACK_API_TOKEN", "demo-token"),
		CompanyID: getenvDefault("FALLBACK_COMPANY_ID", "29"),
	}
}

// Initialize loads the persisted session, if any. Idempotent: once a load
// has succeeded, further calls return immediately. A failed load leaves the
// store uninitialized so a later call can retry; Current still serves the
// fallback in the meantime.
func (u *SessionUseCase) Initialize(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.initialized {
		return nil
	}

	s, err := u.repo.Load(ctx)
	if err != nil {
		log.Printf("[session][usecase] load failed err=%v", err)
		return err
	}
	if s.IsZero() {
		log.Printf("[session][usecase] no persisted session; using fallback company_id=%s", u.fallback.CompanyID)
		u.current = u.fallback
	} else {
		log.Printf("[session][usecase] session restored company_id=%s", s.CompanyID)
		u.current = s
	}
	u.initialized = true
	return nil
}

// Current returns the active session. Before Initialize has succeeded it
// returns the fallback so callers always carry exactly one valid token.
func (u *SessionUseCase) Current() entities.AuthSession {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if !u.initialized || u.current.IsZero() {
		return u.fallback
	}
	return u.current
}

// Update replaces the active session atomically and persists it. The whole
// response cache is purged: memory and persistent entries belong to the
// previous identity.
func (u *SessionUseCase) Update(ctx context.Context, token, companyID string) error {
	token = strings.TrimSpace(token)
	companyID = strings.TrimSpace(companyID)
	if token == "" {
		return ErrInvalidSessionToken
	}
	if companyID == "" {
		return ErrInvalidSessionCompany
	}

	s := entities.AuthSession{Token: token, CompanyID: companyID, UpdatedAt: time.Now().UTC()}

	u.mu.Lock()
	u.current = s
	u.initialized = true
	u.mu.Unlock()

	if err := u.repo.Save(ctx, s); err != nil {
		log.Printf("[session][usecase] save failed company_id=%s err=%v", companyID, err)
		return err
	}
	if err := u.cache.Purge(ctx); err != nil {
		log.Printf("[session][usecase] cache purge after update failed err=%v", err)
	}
	log.Printf("[session][usecase] session updated company_id=%s", companyID)
	return nil
}

// Clear wipes the persisted session, reverts to the fallback identity and
// purges all cached response data.
func (u *SessionUseCase) Clear(ctx context.Context) error {
	u.mu.Lock()
	u.current = u.fallback
	u.initialized = true
	u.mu.Unlock()

	if err := u.repo.Delete(ctx); err != nil {
		log.Printf("[session][usecase] delete failed err=%v", err)
		return err
	}
	if err := u.cache.Purge(ctx); err != nil {
		log.Printf("[session][usecase] cache purge after clear failed err=%v", err)
	}
	log.Printf("[session][usecase] session cleared")
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
