package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/vec"
)

// ChunkRepo is the secondary vector index: document fragments with
// little-endian float32 BLOB embeddings. The corpus is small (hundreds of
// chunks), so Nearest does an exact scan rather than an ANN structure.
type ChunkRepo struct {
	db *sql.DB
}

func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

func (r *ChunkRepo) SaveChunk(ctx context.Context, chunk core.VectorChunk) error {
	blob, err := vec.Serialize(chunk.Embedding)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO chunks (text, source, embedding) VALUES (?, ?, ?)`,
		chunk.Text, chunk.Source, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chunk: %w", err)
	}
	return nil
}

func (r *ChunkRepo) Nearest(ctx context.Context, vector []float32, limit int) ([]core.VectorChunk, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, source, embedding, created_at FROM chunks`,
	)
	if err != nil {
		return nil, fmt.Errorf("chunk scan failed: %w", err)
	}
	defer rows.Close()

	type scored struct {
		chunk core.VectorChunk
		score float64
	}

	var candidates []scored
	for rows.Next() {
		var c core.VectorChunk
		var blob []byte
		if err := rows.Scan(&c.ID, &c.Text, &c.Source, &blob, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}

		embedding, err := vec.Deserialize(blob)
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Int64("chunk_id", c.ID).Msg("skipping chunk with bad embedding")
			continue
		}
		c.Embedding = embedding

		candidates = append(candidates, scored{chunk: c, score: vec.Cosine(vector, embedding)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]core.VectorChunk, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.chunk)
	}
	return out, nil
}

func (r *ChunkRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return n, nil
}
