package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/prasadt1/photocoach/pkg/log"
)

type RAGConfig struct {
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-004"`

	// Minimum cosine similarity for a curated entry to be accepted before
	// falling back to the vector index. Policy constant, not adaptive.
	CuratedThreshold float64 `env:"RAG_CURATED_THRESHOLD" envDefault:"0.6"`

	// How many vector chunks a fallback lookup returns.
	VectorTopK int `env:"RAG_VECTOR_TOP_K" envDefault:"2"`

	// Upper bound on citations appended to an answer.
	MaxCitations int `env:"RAG_MAX_CITATIONS" envDefault:"2"`
}

func NewRAGConfig(ctx context.Context) *RAGConfig {
	c := &RAGConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse RAG config")
	}
	return c
}
