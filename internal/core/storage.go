package core

import "context"

// SessionRepository is the backing medium for per-user session records.
// The concrete backend (sqlite or memory) is chosen once at startup via
// configuration.
type SessionRepository interface {
	// Load returns the persisted session for userID, or nil if none exists.
	// Absence is a valid state, not an error.
	Load(ctx context.Context, userID string) (*Session, error)
	// Save serializes the session and replaces any prior record for that
	// key. Safe to call after every request.
	Save(ctx context.Context, session *Session) error
	// ListKeys reports which fields are currently persisted for a user.
	// Diagnostic surface only.
	ListKeys(ctx context.Context, userID string) ([]string, error)
}

// ChunkRepository is the secondary vector index of document chunks.
type ChunkRepository interface {
	SaveChunk(ctx context.Context, chunk VectorChunk) error
	// Nearest returns up to limit chunks ordered by cosine similarity to
	// the query vector, best first.
	Nearest(ctx context.Context, vector []float32, limit int) ([]VectorChunk, error)
	Count(ctx context.Context) (int, error)
}
