package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasadt1/photocoach/internal/core"
)

type stubEmbedder struct {
	err   error
	calls int
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []float32{1, 0, 0}, nil
}

type memChunks struct {
	saved []core.VectorChunk
}

func (m *memChunks) SaveChunk(ctx context.Context, chunk core.VectorChunk) error {
	m.saved = append(m.saved, chunk)
	return nil
}

func (m *memChunks) Nearest(ctx context.Context, vector []float32, limit int) ([]core.VectorChunk, error) {
	return nil, nil
}

func (m *memChunks) Count(ctx context.Context) (int, error) {
	return len(m.saved), nil
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunIngestsDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "composition.md", "The rule of thirds divides the frame into nine equal parts. Place key elements on the lines.")
	writeDoc(t, dir, "light.txt", "Golden hour light is soft and warm. Shoot within an hour of sunrise or sunset.")
	writeDoc(t, dir, "notes.pdf", "binary, must be ignored")

	embedder := &stubEmbedder{}
	repo := &memChunks{}
	stats, err := NewPipeline(embedder, repo).Run(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, len(repo.saved), stats.Chunks)
	require.NotEmpty(t, repo.saved)
	assert.Equal(t, "composition.md", repo.saved[0].Source)
	assert.NotEmpty(t, repo.saved[0].Embedding)
}

func TestRunSkipsChunksWhenEmbedderFails(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "composition.md", "Leading lines pull the viewer through the frame toward the subject.")

	embedder := &stubEmbedder{err: errors.New("quota exceeded")}
	repo := &memChunks{}
	stats, err := NewPipeline(embedder, repo).Run(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Zero(t, stats.Chunks)
	assert.NotZero(t, stats.Skipped)
	assert.Empty(t, repo.saved)
}

func TestRunFailsOnMissingDirectory(t *testing.T) {
	_, err := NewPipeline(&stubEmbedder{}, &memChunks{}).Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestRunEmptyDirectory(t *testing.T) {
	stats, err := NewPipeline(&stubEmbedder{}, &memChunks{}).Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, stats.Files)
	assert.Zero(t, stats.Chunks)
}
