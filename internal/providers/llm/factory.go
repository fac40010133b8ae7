package llm

import (
	"context"
	"fmt"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
)

// NewProvider constructs the configured backend. The choice is made once
// at startup from configuration; there is no runtime capability probing.
// A misconfigured or unreachable backend is an Unavailable outcome the
// caller handles as ordinary control flow.
func NewProvider(ctx context.Context, appCfg *config.AppConfig, ragCfg *config.RAGConfig) (Provider, error) {
	switch appCfg.LLMProvider {
	case "gemini":
		g, err := NewGemini(ctx, config.NewGeminiConfig(ctx), ragCfg)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w: %v", core.ErrUnavailable, err)
		}
		return g, nil
	case "openai":
		return NewOpenAI(config.NewOpenAIConfig(ctx)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q: %w", appCfg.LLMProvider, core.ErrUnavailable)
	}
}
