package knowledge

import (
	"context"
	"fmt"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/vec"
)

// Store holds the curated knowledge entries with their embeddings and
// answers nearest-neighbor lookups by cosine similarity. Read-only after
// construction and safe to share across requests without locking.
type Store struct {
	entries []core.KnowledgeEntry
}

// Load embeds every curated entry once at startup. An entry whose
// embedding fails is kept without a vector and simply never matches.
func Load(ctx context.Context, embedder core.Embedder) (*Store, error) {
	logger := log.FromCtx(ctx)

	entries := Entries()
	embedded := 0
	for i := range entries {
		v, err := embedder.Embed(ctx, entries[i].Text)
		if err != nil {
			logger.Warn().Err(err).Str("citation", entries[i].Citation).Msg("failed to embed knowledge entry")
			continue
		}
		entries[i].Embedding = v
		embedded++
	}

	if embedded == 0 && len(entries) > 0 {
		return nil, fmt.Errorf("no knowledge entries could be embedded: %w", core.ErrUnavailable)
	}

	logger.Info().Int("entries", len(entries)).Int("embedded", embedded).Msg("curated knowledge store loaded")
	return &Store{entries: entries}, nil
}

// NewStore wraps pre-embedded entries. Used by tests and anywhere the
// embeddings are already known.
func NewStore(entries []core.KnowledgeEntry) *Store {
	return &Store{entries: entries}
}

func (s *Store) Len() int {
	return len(s.entries)
}

// BestMatch returns the entry whose embedding is most similar to the query
// vector, with its cosine score. ok is false for an empty store or query.
func (s *Store) BestMatch(query []float32) (core.KnowledgeEntry, float64, bool) {
	if len(query) == 0 || len(s.entries) == 0 {
		return core.KnowledgeEntry{}, 0, false
	}

	best := -1
	bestScore := 0.0
	for i := range s.entries {
		if len(s.entries[i].Embedding) == 0 {
			continue
		}
		score := vec.Cosine(query, s.entries[i].Embedding)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best == -1 {
		return core.KnowledgeEntry{}, 0, false
	}
	return s.entries[best], bestScore, true
}
