package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideClock,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func provideClock() utils.Clock {
	return utils.SystemClock{}
}
