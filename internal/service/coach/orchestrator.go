package coach

import (
	"context"
	"time"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/service/compact"
	"github.com/prasadt1/photocoach/internal/service/retrieval"
	"github.com/prasadt1/photocoach/internal/service/session"
	"github.com/prasadt1/photocoach/pkg/log"
)

// Result is the combined outcome of one coaching turn.
type Result struct {
	Vision         *core.VisionResult  `json:"vision,omitempty"`
	Coach          core.CoachingResult `json:"coach"`
	SessionUpdated bool                `json:"session_updated"`
}

// Orchestrator runs the full turn: restore session, analyze the photo,
// generate and ground the answer, update history, compact, persist. Every
// collaborator failure degrades the answer instead of failing the turn.
type Orchestrator struct {
	vision   core.VisionAnalyzer
	model    core.CoachModel
	cascade  *retrieval.Cascade
	sessions *session.Store

	compactionThreshold int
	compactMaxSentences int
	recentTurnsWindow   int

	now func() time.Time
}

func NewOrchestrator(cfg *config.AppConfig, vision core.VisionAnalyzer, model core.CoachModel, cascade *retrieval.Cascade, sessions *session.Store) *Orchestrator {
	return &Orchestrator{
		vision:              vision,
		model:               model,
		cascade:             cascade,
		sessions:            sessions,
		compactionThreshold: cfg.CompactionThreshold,
		compactMaxSentences: cfg.CompactMaxSentences,
		recentTurnsWindow:   cfg.RecentTurnsWindow,
		now:                 time.Now,
	}
}

// Run executes one coaching turn for the user. imagePath may be empty when
// the turn is a follow-up question without a new photo. Run never returns
// an error: degraded collaborators produce a degraded but complete Result.
func (o *Orchestrator) Run(ctx context.Context, userID, imagePath, query string) *Result {
	logger := log.FromCtx(ctx)

	sess := o.sessions.GetOrCreate(ctx, userID)

	var vision *core.VisionResult
	if imagePath != "" {
		analyzed, err := o.vision.Analyze(ctx, imagePath, sess.SkillLevel)
		if err != nil {
			logger.Warn().Err(err).Str("image", imagePath).Msg("vision analysis failed, coaching without it")
		} else {
			vision = analyzed
		}
	}

	answer, err := o.model.Coach(ctx, query, vision, core.CoachContext{
		CompactSummary: sess.CompactSummary,
		RecentTurns:    tail(sess.History, o.recentTurnsWindow),
		SkillLevel:     sess.SkillLevel,
	})
	if err != nil {
		// The generator falls back internally; an error here still must not
		// fail the turn.
		logger.Error().Err(err).Msg("coaching generation failed")
		answer = FallbackText(query, vision.IssueLabels())
	}

	grounding := o.cascade.Ground(ctx, answer, vision.IssueLabels())

	sess.History = append(sess.History,
		core.Turn{Role: core.RoleUser, Text: query, Issues: vision.IssueLabels(), CreatedAt: o.now()},
		core.Turn{Role: core.RoleAssistant, Text: answer, CreatedAt: o.now()},
	)

	// Recomputed from scratch every turn past the threshold so the summary
	// always reflects the latest window.
	if len(sess.History) > o.compactionThreshold {
		sess.CompactSummary = compact.Compact(sess.History, o.compactMaxSentences)
	}

	updated := o.sessions.Save(ctx, sess)

	return &Result{
		Vision: vision,
		Coach: core.CoachingResult{
			Text:      grounding.Text,
			Citations: grounding.Citations,
			Tier:      grounding.Tier,
			Exercise:  Exercise(vision.IssueLabels()),
		},
		SessionUpdated: updated,
	}
}

func tail(turns []core.Turn, n int) []core.Turn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
