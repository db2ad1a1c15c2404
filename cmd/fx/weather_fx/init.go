package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(cfg *config.Config, cache mem.ForecastStore, log *zap.Logger) services.WeatherServiceInterface {
	return services.NewOpenWeatherClient(cfg.OpenWeather, cache, cfg.Redis.ForecastTTL, log.Named("weather"))
}
