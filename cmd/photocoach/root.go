package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "photocoach",
	Short: "PhotoCoach — an AI photography coach",
	Long:  `PhotoCoach analyzes your photos, answers photography questions, and remembers the conversation between sessions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) context.Context {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
