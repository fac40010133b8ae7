package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/prasadt1/photocoach/internal/transport/cli"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the coach in the terminal",
	Long:  `Starts an interactive session. Use '/photo <path>' to attach an image to your next question.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx = setupLogger(ctx)
		logger := log.FromCtx(ctx)

		a := newApp(ctx)

		repl, err := cli.NewReadLine(a.orchestrator, a.sessions, a.cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize chat")
		}

		// The REPL runs in the foreground so typing 'exit' ends the
		// process; cleanups still go through the ordered shutdown group.
		if err := repl.Start(ctx); err != nil && err != context.Canceled {
			logger.Error().Err(err).Msg("chat terminated")
		}
		_ = repl.Shutdown(ctx)

		stop()
		srv.ShutdownServices(ctx, a.cleanups)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
