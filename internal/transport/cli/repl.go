// Package cli is the interactive terminal transport: a readline loop for
// asking coaching questions and attaching photos without running the HTTP
// server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/service/coach"
	"github.com/prasadt1/photocoach/internal/service/session"
	"github.com/prasadt1/photocoach/pkg/log"
)

const defaultUserID = "cli-local"

// Runner is the slice of the orchestrator the REPL needs.
type Runner interface {
	Run(ctx context.Context, userID, imagePath, query string) *coach.Result
}

type ReadLine struct {
	cfg      *config.AppConfig
	runner   Runner
	sessions *session.Store
	rl       *readline.Instance

	// Photo attached with the /photo command; consumed by the next question.
	pendingImage string
}

func NewReadLine(runner Runner, sessions *session.Store, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:      cfg,
		runner:   runner,
		sessions: sessions,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("PhotoCoach chat started. '/photo <path>' attaches an image, '/skill <level>' sets your level. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if path, ok := strings.CutPrefix(line, "/photo "); ok {
			r.attachPhoto(strings.TrimSpace(path))
			continue
		}
		if level, ok := strings.CutPrefix(line, "/skill "); ok {
			r.setSkill(ctx, strings.TrimSpace(level))
			continue
		}

		result := r.runner.Run(ctx, defaultUserID, r.pendingImage, line)
		r.pendingImage = ""
		r.render(result)
	}
}

func (r *ReadLine) attachPhoto(path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(r.rl.Stdout(), "Cannot read %s: %v\n", path, err)
		return
	}
	r.pendingImage = path
	fmt.Fprintf(r.rl.Stdout(), "Photo attached. It will be analyzed with your next question.\n")
}

func (r *ReadLine) setSkill(ctx context.Context, level string) {
	lvl := core.SkillLevel(level)
	if !lvl.Valid() {
		fmt.Fprintf(r.rl.Stdout(), "Unknown skill level %q; use beginner, intermediate, or advanced.\n", level)
		return
	}

	sess := r.sessions.GetOrCreate(ctx, defaultUserID)
	sess.SkillLevel = lvl
	r.sessions.Save(ctx, sess)
	fmt.Fprintf(r.rl.Stdout(), "Skill level set to %s.\n", lvl)
}

func (r *ReadLine) render(result *coach.Result) {
	out := r.rl.Stdout()

	if result.Vision != nil {
		if result.Vision.CompositionSummary != "" {
			fmt.Fprintf(out, "\033[38;5;240m[Photo] %s\033[0m\n", result.Vision.CompositionSummary)
		}
		for _, issue := range result.Vision.Issues {
			fmt.Fprintf(out, "\033[38;5;240m  - %s (%s)\033[0m\n", strings.ReplaceAll(issue.Description, "_", " "), issue.Severity)
		}
	}

	fmt.Fprintf(out, "%s\n", result.Coach.Text)
	if result.Coach.Exercise != "" {
		fmt.Fprintf(out, "\n%s\n", result.Coach.Exercise)
	}
	if !result.SessionUpdated {
		fmt.Fprintf(out, "[System] Session could not be persisted; history may not survive a restart.\n")
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
