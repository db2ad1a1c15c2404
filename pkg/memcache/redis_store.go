package mem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"tripplanner/internal/itinerary"
)

// RedisForecasts keeps forecasts as JSON so several API replicas share them.
type RedisForecasts struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisForecasts(client *redis.Client, log *zap.Logger) *RedisForecasts {
	return &RedisForecasts{client: client, log: log}
}

func (s *RedisForecasts) Set(ctx context.Context, location string, samples []itinerary.RawSample, ttl time.Duration) error {
	payload, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("encode forecast: %w", err)
	}
	if err := s.client.Set(ctx, ForecastKey(location), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set forecast: %w", err)
	}
	return nil
}

func (s *RedisForecasts) Get(ctx context.Context, location string) ([]itinerary.RawSample, bool) {
	payload, err := s.client.Get(ctx, ForecastKey(location)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("redis get forecast failed", zap.String("location", location), zap.Error(err))
		}
		return nil, false
	}

	var samples []itinerary.RawSample
	if err := json.Unmarshal(payload, &samples); err != nil {
		s.log.Warn("cached forecast is not valid JSON", zap.String("location", location), zap.Error(err))
		return nil, false
	}
	return samples, true
}
