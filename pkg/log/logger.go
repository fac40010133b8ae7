package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger installs a configured zerolog logger into ctx.
// Every log line is duplicated into the process-wide ring buffer so the
// diagnostics endpoint can replay recent entries.
func NewContextWithLogger(ctx context.Context, debug bool) context.Context {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.DateTime,
	}

	logger := zerolog.New(io.MultiWriter(console, Recent())).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	return logger.WithContext(ctx)
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
