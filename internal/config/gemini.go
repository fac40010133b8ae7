package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/prasadt1/photocoach/pkg/log"
)

type GeminiConfig struct {
	APIKey      string `env:"GEMINI_API_KEY,required,notEmpty"`
	VisionModel string `env:"GEMINI_VISION_MODEL" envDefault:"gemini-1.5-flash"`
	CoachModel  string `env:"GEMINI_COACH_MODEL" envDefault:"gemini-1.5-flash"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
