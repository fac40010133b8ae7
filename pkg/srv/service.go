package srv

import (
	"context"

	"github.com/prasadt1/photocoach/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil && err != context.Canceled {
				logger.Fatal().Err(err).Msgf("%T failed to start", service)
			}
		}(service)
	}
}

// ShutdownServices blocks until ctx is done, then stops services in
// reverse registration order, so transports drain before the resources
// they depend on are closed.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(context.Background()); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
