// Package retrieval grounds freely-generated coaching answers in citable
// source material: curated entries first, the vector chunk index as
// fallback, and silence when neither clears the bar.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/knowledge"
	"github.com/prasadt1/photocoach/pkg/log"
)

const citationExcerptLen = 200

// Grounding is the outcome of one cascade invocation: the answer with a
// citation block appended, the citations used, and which tier backed them.
type Grounding struct {
	Text      string
	Citations []core.Citation
	Tier      core.Tier
}

// Cascade is read-only after construction and shared across requests.
// The chunk repo may be nil when no vector index was built; the cascade
// then terminates at tier none instead of falling back.
type Cascade struct {
	embedder core.Embedder
	curated  *knowledge.Store
	chunks   core.ChunkRepository

	threshold    float64
	vectorTopK   int
	maxCitations int
}

func NewCascade(cfg *config.RAGConfig, embedder core.Embedder, curated *knowledge.Store, chunks core.ChunkRepository) *Cascade {
	return &Cascade{
		embedder:     embedder,
		curated:      curated,
		chunks:       chunks,
		threshold:    cfg.CuratedThreshold,
		vectorTopK:   cfg.VectorTopK,
		maxCitations: cfg.MaxCitations,
	}
}

// Ground appends a citation block to answer when a source clears the
// cascade. Citations are additive: the model's wording is never altered.
// Ground never fails the enclosing request; every lookup problem collapses
// to tier none.
func (c *Cascade) Ground(ctx context.Context, answer string, issueLabels []string) Grounding {
	logger := log.FromCtx(ctx)

	none := Grounding{Text: answer, Tier: core.TierNone}
	if strings.TrimSpace(answer) == "" {
		return none
	}

	topics := ExtractTopics(answer, issueLabels)
	query := strings.Join(topics, " ")

	queryVec, err := c.embedder.Embed(ctx, query)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to embed retrieval query")
		return none
	}

	// Primary: curated entries, tens of comparisons, verified citations.
	if entry, score, ok := c.curated.BestMatch(queryVec); ok && score >= c.threshold {
		logger.Debug().Float64("score", score).Str("citation", entry.Citation).Msg("curated grounding accepted")
		citations := []core.Citation{{Text: entry.Text, Source: entry.Citation}}
		return Grounding{
			Text:      answer + formatCitations(citations),
			Citations: citations,
			Tier:      core.TierCurated,
		}
	}

	// Fallback: broader recall from the vector index, weaker verification.
	if c.chunks == nil {
		return none
	}

	found, err := c.chunks.Nearest(ctx, queryVec, c.vectorTopK)
	if err != nil {
		logger.Warn().Err(err).Msg("vector index lookup failed")
		return none
	}
	if len(found) == 0 {
		return none
	}

	citations := make([]core.Citation, 0, len(found))
	for _, chunk := range found {
		if len(citations) == c.maxCitations {
			break
		}
		citations = append(citations, core.Citation{Text: chunk.Text, Source: chunk.Source})
	}

	return Grounding{
		Text:      answer + formatCitations(citations),
		Citations: citations,
		Tier:      core.TierVector,
	}
}

func formatCitations(citations []core.Citation) string {
	var sb strings.Builder
	sb.WriteString("\n\nSupporting Resources:\n")
	for _, cit := range citations {
		excerpt := cit.Text
		if len(excerpt) > citationExcerptLen {
			excerpt = excerpt[:citationExcerptLen] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n- %s\n  Source: %s\n", excerpt, cit.Source))
	}
	return sb.String()
}
