package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedEmbedder struct {
	vector []float32
	err    error
}

func (f *fixedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vector, f.err
}

type fakeChunks struct {
	chunks []core.VectorChunk
	err    error
}

func (f *fakeChunks) SaveChunk(ctx context.Context, chunk core.VectorChunk) error { return nil }

func (f *fakeChunks) Nearest(ctx context.Context, vector []float32, limit int) ([]core.VectorChunk, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.chunks) > limit {
		return f.chunks[:limit], nil
	}
	return f.chunks, nil
}

func (f *fakeChunks) Count(ctx context.Context) (int, error) { return len(f.chunks), nil }

func ragConfig(threshold float64) *config.RAGConfig {
	return &config.RAGConfig{
		CuratedThreshold: threshold,
		VectorTopK:       2,
		MaxCitations:     2,
	}
}

// Curated entry at cosine 0.82 against the query vector, per the stated
// acceptance scenario.
func curatedStore() *knowledge.Store {
	return knowledge.NewStore([]core.KnowledgeEntry{
		{
			Text:      "Use the rule of thirds to place your subject off-center.",
			Citation:  "Adams, Ansel. The Camera.",
			Embedding: []float32{0.82, 0.573},
		},
	})
}

func TestGroundCuratedTier(t *testing.T) {
	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{vector: []float32{1, 0}}, curatedStore(),
		&fakeChunks{chunks: []core.VectorChunk{{Text: "pdf chunk", Source: "manual.pdf"}}})

	got := cascade.Ground(context.Background(), "Try the rule of thirds for stronger composition.", nil)

	assert.Equal(t, core.TierCurated, got.Tier)
	require.Len(t, got.Citations, 1)
	assert.Equal(t, "Adams, Ansel. The Camera.", got.Citations[0].Source)
	assert.Contains(t, got.Text, "Supporting Resources:")
	assert.True(t, strings.HasPrefix(got.Text, "Try the rule of thirds"))
}

func TestGroundFallsBackToVectorTier(t *testing.T) {
	// Curated scores ~0.3 against this query vector.
	store := knowledge.NewStore([]core.KnowledgeEntry{
		{Text: "curated", Citation: "Adams", Embedding: []float32{0.3, 0.954}},
	})
	chunks := &fakeChunks{chunks: []core.VectorChunk{
		{Text: "chunk about metering", Source: "peterson.pdf"},
	}}

	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{vector: []float32{1, 0}}, store, chunks)

	got := cascade.Ground(context.Background(), "Check your exposure before shooting.", nil)

	assert.Equal(t, core.TierVector, got.Tier)
	require.Len(t, got.Citations, 1)
	assert.Equal(t, "peterson.pdf", got.Citations[0].Source)
	for _, c := range got.Citations {
		assert.NotEqual(t, "Adams", c.Source, "curated entries must not leak into vector tier")
	}
}

func TestGroundTierNoneWithoutIndex(t *testing.T) {
	store := knowledge.NewStore([]core.KnowledgeEntry{
		{Text: "curated", Citation: "Adams", Embedding: []float32{0, 1}},
	})

	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{vector: []float32{1, 0}}, store, nil)

	answer := "Check your exposure before shooting."
	got := cascade.Ground(context.Background(), answer, nil)

	assert.Equal(t, core.TierNone, got.Tier)
	assert.Empty(t, got.Citations)
	assert.Equal(t, answer, got.Text, "tier none leaves the answer untouched")
}

func TestGroundTierNoneOnEmbedderFailure(t *testing.T) {
	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{err: errors.New("api down")}, curatedStore(),
		&fakeChunks{chunks: []core.VectorChunk{{Text: "x", Source: "y"}}})

	got := cascade.Ground(context.Background(), "Some advice.", nil)

	assert.Equal(t, core.TierNone, got.Tier)
	assert.Equal(t, "Some advice.", got.Text)
}

func TestGroundTierNoneOnIndexFailure(t *testing.T) {
	store := knowledge.NewStore([]core.KnowledgeEntry{
		{Text: "curated", Citation: "Adams", Embedding: []float32{0, 1}},
	})
	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{vector: []float32{1, 0}}, store,
		&fakeChunks{err: errors.New("index corrupt")})

	got := cascade.Ground(context.Background(), "Some advice.", nil)

	assert.Equal(t, core.TierNone, got.Tier)
}

func TestGroundEmptyAnswer(t *testing.T) {
	cascade := NewCascade(ragConfig(0.6), &fixedEmbedder{vector: []float32{1, 0}}, curatedStore(), nil)

	got := cascade.Ground(context.Background(), "   ", nil)

	assert.Equal(t, core.TierNone, got.Tier)
}

// Raising the threshold can only move outcomes away from the curated tier,
// never toward it.
func TestThresholdMonotonicity(t *testing.T) {
	embedder := &fixedEmbedder{vector: []float32{1, 0}}
	chunks := &fakeChunks{chunks: []core.VectorChunk{{Text: "chunk", Source: "src"}}}
	answer := "Try the rule of thirds."

	rank := map[core.Tier]int{core.TierCurated: 0, core.TierVector: 1, core.TierNone: 2}

	prev := -1
	for _, threshold := range []float64{0.1, 0.5, 0.81, 0.9, 0.99} {
		cascade := NewCascade(ragConfig(threshold), embedder, curatedStore(), chunks)
		got := cascade.Ground(context.Background(), answer, nil)

		assert.GreaterOrEqual(t, rank[got.Tier], prev,
			"threshold %v regressed tier to %s", threshold, got.Tier)
		prev = rank[got.Tier]
	}
}

func TestExtractTopicsFromAnswer(t *testing.T) {
	topics := ExtractTopics("Use the rule of thirds and shoot at golden hour.", nil)

	assert.Contains(t, topics, "rule of thirds")
	assert.Contains(t, topics, "golden hour")
}

func TestExtractTopicsUsesIssueLabels(t *testing.T) {
	topics := ExtractTopics("Nice shot overall.", []string{"subject_centered"})

	assert.Contains(t, topics, "centered subject")
}

func TestExtractTopicsDefault(t *testing.T) {
	topics := ExtractTopics("Well done.", nil)

	assert.Equal(t, []string{"composition", "exposure"}, topics)
}

func TestExtractTopicsDeterministic(t *testing.T) {
	answer := "Watch your exposure, iso, and aperture at golden hour."
	first := ExtractTopics(answer, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractTopics(answer, nil))
	}
}
