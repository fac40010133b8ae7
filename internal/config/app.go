package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/prasadt1/photocoach/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PHOTOCOACH_RUNTIME_PATH" envDefault:".photocoach"`

	// Which hosted model backs vision and coaching.
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// Where sessions persist: "sqlite" or "memory".
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"sqlite"`

	// HTTP API listen address.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Context Management
	// History beyond this many turns is compacted; the tail stays verbatim.
	CompactionThreshold int `env:"COMPACTION_THRESHOLD" envDefault:"6"`
	CompactMaxSentences int `env:"COMPACT_MAX_SENTENCES" envDefault:"3"`
	RecentTurnsWindow   int `env:"RECENT_TURNS_WINDOW" envDefault:"6"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "photocoach.db")
}

func GetRuntimePath() string {
	path := os.Getenv("PHOTOCOACH_RUNTIME_PATH")
	if path == "" {
		path = ".photocoach"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
