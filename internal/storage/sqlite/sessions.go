package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prasadt1/photocoach/internal/core"
)

// SessionRepo stores one JSON blob per user, overwritten whole on every
// save. Deserialization is forward-only and best-effort: unknown fields
// are dropped, missing fields default.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Load(ctx context.Context, userID string) (*core.Session, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE user_id = ?`, userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var session core.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	session.UserID = userID
	if !session.SkillLevel.Valid() {
		session.SkillLevel = core.SkillBeginner
	}
	return &session, nil
}

func (r *SessionRepo) Save(ctx context.Context, session *core.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		session.UserID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ListKeys reports the top-level fields persisted for a user. Diagnostic
// surface for observability tooling only.
func (r *SessionRepo) ListKeys(ctx context.Context, userID string) ([]string, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE user_id = ?`, userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
