// Package llm wraps the hosted model APIs behind one narrow surface:
// describe an image, generate text, embed text. Which vendor backs it is a
// startup-time configuration choice.
package llm

import (
	"context"

	"github.com/prasadt1/photocoach/internal/core"
)

type Provider interface {
	// Describe sends the image and prompt to a multimodal model and
	// returns its free-text observations.
	Describe(ctx context.Context, imagePath string, prompt string) (string, error)
	// Generate returns the model's completion for a text prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Embed maps text to a fixed-length vector.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Unavailable is the degraded backend used when no real provider could be
// constructed. Every call reports ErrUnavailable, which the services absorb
// with their fallback paths, so the process stays useful without a key.
func Unavailable() Provider {
	return unavailable{}
}

type unavailable struct{}

func (unavailable) Describe(ctx context.Context, imagePath string, prompt string) (string, error) {
	return "", core.ErrUnavailable
}

func (unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	return "", core.ErrUnavailable
}

func (unavailable) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, core.ErrUnavailable
}
