package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideForecastStore)

// provideForecastStore uses Redis when an address is configured and the
// in-process store otherwise.
func provideForecastStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) mem.ForecastStore {
	if cfg.Redis.Address == "" {
		log.Info("forecast cache: in-memory")
		return mem.NewMemoryForecasts()
	}

	client := infra.NewRedis(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.PingRedis(ctx, client); err != nil {
				// the cache is optional, lookups just miss
				log.Warn("redis unavailable at startup", zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info("forecast cache: redis", zap.String("address", cfg.Redis.Address))
	return mem.NewRedisForecasts(client, log)
}
