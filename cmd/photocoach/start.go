package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/prasadt1/photocoach/internal/transport/httpapi"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PhotoCoach HTTP API",
	Long:  `Initializes storage, the model provider, and the knowledge base, then serves the coaching API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx = setupLogger(ctx)
		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting photocoach")

		a := newApp(ctx)
		services := append(a.cleanups, httpapi.NewServer(a.cfg, a.orchestrator, a.sessions))

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("photocoach has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
