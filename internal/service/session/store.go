// Package session wraps a SessionRepository with the request-path failure
// semantics: a broken backing medium degrades the session to memory-only
// for the turn instead of failing it.
package session

import (
	"context"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/pkg/log"
)

type Store struct {
	repo core.SessionRepository
}

func NewStore(repo core.SessionRepository) *Store {
	return &Store{repo: repo}
}

// GetOrCreate returns the persisted session for userID, or a fresh default
// one. Read failures are logged and treated like absence; this method
// never fails a request.
func (s *Store) GetOrCreate(ctx context.Context, userID string) *core.Session {
	persisted, err := s.repo.Load(ctx, userID)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", userID).Msg("session load failed, starting fresh")
		return core.NewSession(userID)
	}
	if persisted == nil {
		return core.NewSession(userID)
	}
	return persisted
}

// Save overwrites the user's record. Persistence failure is logged and
// swallowed: the in-process session stays usable even when durability
// degraded for this turn.
func (s *Store) Save(ctx context.Context, session *core.Session) bool {
	if err := s.repo.Save(ctx, session); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("user_id", session.UserID).Msg("session save failed, continuing in memory")
		return false
	}
	return true
}

// ListKeys exposes which fields are persisted for a user. Diagnostic only,
// so errors propagate to the observability caller.
func (s *Store) ListKeys(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListKeys(ctx, userID)
}
