package memory

import (
	"context"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
)

// sessionRepository is a mutex-guarded in-memory session table keyed by
// token hash. Expired rows are treated as absent on lookup and reaped by
// DeleteExpired.
type sessionRepository struct {
	mu      sync.RWMutex
	byToken map[string]*entity.Session
}

// NewSessionRepository constructs an empty session store.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		byToken: make(map[string]*entity.Session),
	}
}

// Create persists a new session row.
func (r *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.byToken[stored.TokenHash] = &stored

	return nil
}

// FindByTokenHash retrieves the live session for a token hash. An expired
// session is reported as not found.
func (r *sessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byToken[tokenHash]
	if !ok || !stored.Active(time.Now()) {
		return nil, repository.ErrSessionNotFound
	}

	session := *stored

	return &session, nil
}

// DeleteByTokenHash removes the session for a token hash, if present.
// Deleting an absent session is not an error; logout is idempotent.
func (r *sessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, tokenHash)

	return nil
}

// DeleteExpired removes every expired session and reports how many.
func (r *sessionRepository) DeleteExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for hash, stored := range r.byToken {
		if !stored.Active(now) {
			delete(r.byToken, hash)
			removed++
		}
	}

	return removed, nil
}
