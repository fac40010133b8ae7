// Package vision turns an uploaded photo into structured composition
// feedback: EXIF-driven heuristics plus a multimodal model pass. The
// heuristics stand alone when the model is unreachable.
package vision

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/exif"
	"github.com/prasadt1/photocoach/internal/providers/llm"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/retry"
)

// Issue labels shared with the retrieval cascade's topic extraction.
const (
	IssueShallowDOF      = "shallow_depth_of_field"
	IssueSubjectCentered = "subject_centered"
	IssueHighISO         = "high_iso_noise"
)

type Analyzer struct {
	provider llm.Provider
	retrier  *retry.Retrier
}

func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{
		provider: provider,
		retrier:  retry.NewDefaultRetrier(),
	}
}

// Analyze inspects the photo at imagePath. It fails only when both the
// EXIF pass and the model pass produced nothing usable.
func (a *Analyzer) Analyze(ctx context.Context, imagePath string, skill core.SkillLevel) (*core.VisionResult, error) {
	logger := log.FromCtx(ctx)

	meta, exifErr := exif.Extract(imagePath)
	if exifErr != nil {
		logger.Warn().Err(exifErr).Str("image", imagePath).Msg("exif extraction failed")
	}

	result := &core.VisionResult{EXIF: meta.Map()}
	var summary []string

	if exifErr == nil {
		summary = append(summary, a.applyHeuristics(meta, result)...)
	}

	modelText, modelErr := a.describe(ctx, imagePath, meta, skill)
	if modelErr != nil {
		logger.Warn().Err(modelErr).Msg("vision model unavailable, using heuristics only")
		if exifErr != nil {
			return nil, fmt.Errorf("image analysis failed: %w", modelErr)
		}
	} else {
		summary = append([]string{strings.TrimSpace(modelText)}, summary...)
	}

	result.CompositionSummary = strings.Join(summary, " ")
	return result, nil
}

// applyHeuristics is the rule-based pass over camera settings. It mutates
// result's issue and strength lists and returns summary fragments.
func (a *Analyzer) applyHeuristics(meta exif.Metadata, result *core.VisionResult) []string {
	var summary []string

	if meta.FNumber > 0 && meta.FNumber < 2.5 {
		result.Issues = append(result.Issues, core.Issue{
			Description: IssueShallowDOF,
			Severity:    core.SeverityMedium,
			Suggestion:  "With a wide aperture, place the focus point deliberately; the margin for error is thin.",
		})
		summary = append(summary, "Shallow depth of field, good for isolating subjects, but watch focus.")
	}

	if meta.FocalLength > 0 && meta.FocalLength < 30 {
		summary = append(summary, "Wide focal length, consider a strong foreground element for depth.")
		result.Strengths = append(result.Strengths, "Wide perspective suits expansive scenes.")
	}

	if meta.ISO >= 3200 {
		result.Issues = append(result.Issues, core.Issue{
			Description: IssueHighISO,
			Severity:    core.SeverityLow,
			Suggestion:  "Open the aperture or slow the shutter before pushing ISO this far.",
		})
	}

	// Without subject detection the centered-subject nudge is the default
	// composition flag, as most beginner photos center the subject.
	result.Issues = append(result.Issues, core.Issue{
		Description: IssueSubjectCentered,
		Severity:    core.SeverityLow,
		Suggestion:  "Try placing the subject on a third for a stronger composition.",
	})

	return summary
}

func (a *Analyzer) describe(ctx context.Context, imagePath string, meta exif.Metadata, skill core.SkillLevel) (string, error) {
	prompt := buildVisionPrompt(meta, skill)

	var text string
	err := a.retrier.Do(ctx, func() error {
		var opErr error
		text, opErr = a.provider.Describe(ctx, imagePath, prompt)
		return opErr
	})
	return text, err
}

func buildVisionPrompt(meta exif.Metadata, skill core.SkillLevel) string {
	var sb strings.Builder
	sb.WriteString("You are a photography coach reviewing a photo for a ")
	sb.WriteString(string(skill))
	sb.WriteString(" photographer. In 2-3 sentences, describe the composition: subject placement, light, and one concrete improvement.")

	settings := meta.Map()
	if len(settings) > 0 {
		sb.WriteString(" Camera settings: ")
		first := true
		for _, key := range []string{"Model", "FNumber", "ISOSpeedRatings", "FocalLength", "ExposureTime"} {
			if v, ok := settings[key]; ok {
				if !first {
					sb.WriteString(", ")
				}
				sb.WriteString(key + "=" + v)
				first = false
			}
		}
		sb.WriteString(".")
	}

	return sb.String()
}
