package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/knowledge"
	"github.com/prasadt1/photocoach/internal/providers/llm"
	"github.com/prasadt1/photocoach/internal/service/coach"
	"github.com/prasadt1/photocoach/internal/service/retrieval"
	"github.com/prasadt1/photocoach/internal/service/session"
	"github.com/prasadt1/photocoach/internal/service/vision"
	"github.com/prasadt1/photocoach/internal/storage/memory"
	"github.com/prasadt1/photocoach/internal/storage/sqlite"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/srv"
)

// app carries the wired collaborators shared by the start, chat, and
// ingest commands. Cleanups are services so resource shutdown runs in the
// same ordered group as the transports.
type app struct {
	cfg          *config.AppConfig
	provider     llm.Provider
	sessions     *session.Store
	chunks       core.ChunkRepository
	orchestrator *coach.Orchestrator
	cleanups     []srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	ragCfg := config.NewRAGConfig(ctx)

	a := &app{cfg: appCfg}

	// 2. Storage
	sessionRepo := a.initStorage(ctx, appCfg)
	a.sessions = session.NewStore(sessionRepo)

	// 3. AI Provider
	provider, err := llm.NewProvider(ctx, appCfg, ragCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("llm provider unavailable, answers will use fallbacks only")
		provider = llm.Unavailable()
	}
	a.provider = provider
	if closer, ok := provider.(interface{ Close() error }); ok {
		a.cleanups = append(a.cleanups, srv.NewCleanup(closer.Close))
	}

	// 4. Curated knowledge base
	curated, err := knowledge.Load(ctx, provider)
	if err != nil {
		logger.Warn().Err(err).Msg("curated knowledge unavailable, grounding degrades to the vector index")
		curated = knowledge.NewStore(nil)
	}

	// 5. Retrieval cascade over curated entries and the vector index
	cascade := retrieval.NewCascade(ragCfg, provider, curated, a.chunks)

	// 6. Orchestrator
	a.orchestrator = coach.NewOrchestrator(
		appCfg,
		vision.NewAnalyzer(provider),
		coach.NewGenerator(provider),
		cascade,
		a.sessions,
	)

	return a
}

// initStorage picks the configured session backend. The vector chunk index
// only exists on the sqlite backend; with the memory backend the cascade
// stops at the curated tier.
func (a *app) initStorage(ctx context.Context, cfg *config.AppConfig) core.SessionRepository {
	logger := log.FromCtx(ctx)

	if cfg.SessionBackend == "memory" {
		logger.Info().Msg("using in-memory session store, sessions will not survive restarts")
		return memory.NewSessionRepo()
	}

	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	a.cleanups = append(a.cleanups, srv.NewCleanup(db.Close))

	a.chunks = sqlite.NewChunkRepo(db)
	return sqlite.NewSessionRepo(db)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
