package prompt_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator)

// ProvideTextGenerator creates the Gemini or OpenAI client named by ai.provider.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.TextGeneratorInterface, error) {
	baseURL := ""
	if cfg.AI.Provider == config.ProviderOpenAI {
		baseURL = cfg.OpenAI.BaseURL
	}

	gen, err := utils.NewTextGenerator(context.Background(), cfg.AI.Provider, cfg.APIKey(), cfg.AI.Model, baseURL)
	if err != nil {
		return nil, err
	}

	log.Info("text generator ready", zap.String("provider", cfg.AI.Provider), zap.String("model", cfg.AI.Model))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gen.Close()
		},
	})
	return utils.WithUpstreamMetrics(gen, cfg.AI.Provider), nil
}
