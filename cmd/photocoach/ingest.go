package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/prasadt1/photocoach/internal/service/ingest"
	"github.com/prasadt1/photocoach/pkg/log"
	"github.com/prasadt1/photocoach/pkg/srv"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Build the vector index from a directory of documents",
	Long:  `Chunks every .txt and .md file under the directory, embeds the chunks, and stores them in the vector index used for citation fallback.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(setupLogger(cmd.Context()))
		logger := log.FromCtx(ctx)

		a := newApp(ctx)
		defer func() {
			cancel()
			srv.ShutdownServices(ctx, a.cleanups)
		}()

		if a.chunks == nil {
			return errors.New("the ingest pipeline needs the sqlite backend; set SESSION_BACKEND=sqlite")
		}

		stats, err := ingest.NewPipeline(a.provider, a.chunks).Run(ctx, args[0])
		if err != nil {
			return err
		}

		logger.Info().
			Int("files", stats.Files).
			Int("chunks", stats.Chunks).
			Int("skipped", stats.Skipped).
			Msg("vector index updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
