// Package ingest is the offline pipeline that builds the secondary vector
// index: it walks a directory of reference documents, chunks them, embeds
// each chunk, and writes the result to the chunk repository. It never runs
// on the request path.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/providers/rag"
	"github.com/prasadt1/photocoach/pkg/log"
)

// Stats summarizes one ingest run.
type Stats struct {
	Files   int
	Chunks  int
	Skipped int
}

type Pipeline struct {
	embedder core.Embedder
	chunks   core.ChunkRepository
	chunker  rag.ChunkerConfig
}

func NewPipeline(embedder core.Embedder, chunks core.ChunkRepository) *Pipeline {
	return &Pipeline{
		embedder: embedder,
		chunks:   chunks,
		chunker:  rag.DefaultChunkerConfig(),
	}
}

// Run ingests every .txt and .md file under dir. A chunk whose embedding
// fails is skipped and counted, not fatal; an unreadable directory is.
func (p *Pipeline) Run(ctx context.Context, dir string) (Stats, error) {
	logger := log.FromCtx(ctx)
	var stats Stats

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDocument(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		stats.Files++
		source := filepath.Base(path)

		for _, chunk := range rag.ChunkText(string(data), p.chunker) {
			if err := ctx.Err(); err != nil {
				return err
			}

			vec, err := p.embedder.Embed(ctx, chunk.Text)
			if err != nil {
				logger.Warn().Err(err).Str("source", source).Int("chunk", chunk.Index).Msg("embedding failed, skipping chunk")
				stats.Skipped++
				continue
			}

			record := core.VectorChunk{Text: chunk.Text, Source: source, Embedding: vec}
			if err := p.chunks.SaveChunk(ctx, record); err != nil {
				return fmt.Errorf("failed to store chunk from %s: %w", source, err)
			}
			stats.Chunks++
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	logger.Info().Int("files", stats.Files).Int("chunks", stats.Chunks).Int("skipped", stats.Skipped).Msg("ingest finished")
	return stats, nil
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}
