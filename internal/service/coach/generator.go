// Package coach generates the coaching answer and orchestrates the full
// request turn: vision, generation, grounding, history, persistence.
package coach

import (
	"context"
	"strings"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/providers/llm"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/retry"
)

// Generator produces free-text coaching from the model, falling back to
// canned keyword-matched advice when the model is unreachable. It never
// fails a turn.
type Generator struct {
	provider llm.Provider
	retrier  *retry.Retrier
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{
		provider: provider,
		retrier:  retry.NewDefaultRetrier(),
	}
}

// Coach returns the raw (ungrounded) coaching text for the query.
func (g *Generator) Coach(ctx context.Context, query string, vision *core.VisionResult, cc core.CoachContext) (string, error) {
	prompt := buildCoachPrompt(query, vision, cc)

	var text string
	err := g.retrier.Do(ctx, func() error {
		var opErr error
		text, opErr = g.provider.Generate(ctx, prompt)
		return opErr
	})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("coaching model unavailable, serving fallback")
		return FallbackText(query, vision.IssueLabels()), nil
	}
	return strings.TrimSpace(text), nil
}

func buildCoachPrompt(query string, vision *core.VisionResult, cc core.CoachContext) string {
	var sb strings.Builder

	sb.WriteString("You are an expert photography coach providing personalized guidance to a ")
	sb.WriteString(string(cc.SkillLevel))
	sb.WriteString(" photographer.\n\n")

	sb.WriteString("User's current question: ")
	sb.WriteString(query)
	sb.WriteString("\n\n")

	if vision != nil {
		if vision.CompositionSummary != "" {
			sb.WriteString("Photo analysis:\n")
			sb.WriteString(vision.CompositionSummary)
			sb.WriteString("\n\n")
		}
		if labels := vision.IssueLabels(); len(labels) > 0 {
			sb.WriteString("Detected issues in the photo:\n")
			for _, label := range labels {
				sb.WriteString("- " + strings.ReplaceAll(label, "_", " ") + "\n")
			}
			sb.WriteString("\n")
		}
	}

	if cc.CompactSummary != "" {
		sb.WriteString("Summary of the earlier conversation:\n")
		sb.WriteString(cc.CompactSummary)
		sb.WriteString("\n\n")
	}

	if len(cc.RecentTurns) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, turn := range cc.RecentTurns {
			sb.WriteString("- " + string(turn.Role) + ": " + turn.Text + "\n")
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("This is the start of the conversation.\n\n")
	}

	sb.WriteString("Provide helpful, specific photography coaching that directly addresses the question, " +
		"references any detected issues, gives advice the photographer can apply immediately, " +
		"and builds on the conversation so far. Stay focused and concise, 3-4 sentences. " +
		"Respond as a friendly coach, not as a template.")

	return sb.String()
}

// FallbackText is the deterministic keyword-matched answer used when the
// model is down. It always produces something sensible for the query.
func FallbackText(query string, issues []string) string {
	lower := strings.ToLower(query)
	var sb strings.Builder
	sb.WriteString("Based on your question about " + query + ":\n\n")

	switch {
	case strings.Contains(lower, "composition"):
		sb.WriteString("For composition: ")
		if containsLabel(issues, "subject_centered") {
			sb.WriteString("Try moving your main subject to the rule of thirds. ")
		}
		sb.WriteString("Check your horizon line and use leading lines to guide the viewer.")
	case strings.Contains(lower, "lighting"):
		sb.WriteString("Lighting is key to great photos. Look for directional light, avoid harsh shadows, and consider the time of day.")
	case strings.Contains(lower, "iso"), strings.Contains(lower, "settings"):
		sb.WriteString("Adjust ISO based on available light - lower ISO for bright conditions, higher for low light. Balance with aperture and shutter speed.")
	case strings.Contains(lower, "about"), strings.Contains(lower, "subject"):
		sb.WriteString("Your photo shows interesting elements. Focus on what draws your eye most, and frame to emphasize that.")
	default:
		sb.WriteString("Great question about photography. Keep practicing and experimenting with different perspectives and settings.")
	}

	return sb.String()
}

// Exercise returns a practice drill matched to the most significant
// detected issue.
func Exercise(issues []string) string {
	switch {
	case containsLabel(issues, "subject_centered"):
		return "Exercise: Take 10 photos of the same scene. For each frame, place the subject on a different position using the rule of thirds. Review which feels most compelling."
	case containsLabel(issues, "shallow_depth_of_field"):
		return "Exercise: Practice focus placement with a wide aperture. Take shots with focus on different elements to master depth control."
	default:
		return "Exercise: Spend 30 minutes taking photos of one subject from different angles, distances, and compositions. Note what works best."
	}
}

func containsLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
