package core

import (
	"context"
	"errors"
)

// ErrUnavailable marks a collaborator that could not be constructed or is
// not configured. Call sites treat it as ordinary control flow and degrade,
// never as a fatal condition on the request path.
var ErrUnavailable = errors.New("collaborator unavailable")

// VisionAnalyzer inspects an uploaded photo and returns structured
// composition feedback. May fail on transport or API errors.
type VisionAnalyzer interface {
	Analyze(ctx context.Context, imagePath string, skill SkillLevel) (*VisionResult, error)
}

// CoachContext is the bounded conversation context handed to the coaching
// model: a compacted summary of older turns plus the verbatim recent tail.
type CoachContext struct {
	CompactSummary string
	RecentTurns    []Turn
	SkillLevel     SkillLevel
}

// CoachModel generates free-text coaching advice. The raw answer is grounded
// by the retrieval cascade afterwards; the model never sees the knowledge
// base directly.
type CoachModel interface {
	Coach(ctx context.Context, query string, vision *VisionResult, cc CoachContext) (string, error)
}

// Embedder maps text to a fixed-length vector, deterministic for identical
// input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
