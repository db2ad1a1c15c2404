package utils

import (
	"context"
	"time"

	"tripplanner/pkg/metrics"
)

type instrumentedGenerator struct {
	TextGeneratorInterface
	provider string
}

// WithUpstreamMetrics records the latency and outcome of every GenerateText call.
func WithUpstreamMetrics(gen TextGeneratorInterface, provider string) TextGeneratorInterface {
	return &instrumentedGenerator{TextGeneratorInterface: gen, provider: provider}
}

func (g *instrumentedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := g.TextGeneratorInterface.GenerateText(ctx, prompt)

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.UpstreamDuration.WithLabelValues(g.provider, "generate_text", result).Observe(time.Since(start).Seconds())
	return text, err
}
