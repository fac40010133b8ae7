// Package memory is the non-durable SessionRepository backend: the same
// contract as the sqlite repo without the disk. Selected via configuration,
// and the store unit tests run against it.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/prasadt1/photocoach/internal/core"
)

type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string][]byte)}
}

func (r *SessionRepo) Load(ctx context.Context, userID string) (*core.Session, error) {
	r.mu.RLock()
	data, ok := r.sessions[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var session core.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	session.UserID = userID
	if !session.SkillLevel.Valid() {
		session.SkillLevel = core.SkillBeginner
	}
	return &session, nil
}

func (r *SessionRepo) Save(ctx context.Context, session *core.Session) error {
	// Serialize through JSON like the durable backend so both share the
	// same record shape and last-write-wins semantics.
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	r.mu.Lock()
	r.sessions[session.UserID] = data
	r.mu.Unlock()
	return nil
}

func (r *SessionRepo) ListKeys(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	data, ok := r.sessions[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
