package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/itinerary"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
)

var errLocationNotFound = errors.New("location not found")

type WeatherServiceInterface interface {
	// Forecast never fails: any provider problem yields an empty forecast.
	Forecast(ctx context.Context, location string, start, end time.Time) []itinerary.ForecastSample
}

// OpenWeatherClient talks to the OpenWeather geocoding and 5 day / 3 hour
// forecast endpoints.
type OpenWeatherClient struct {
	HTTP     *http.Client
	APIKey   string
	BaseURL  string
	Cache    mem.ForecastStore
	CacheTTL time.Duration
	log      *zap.Logger
}

func NewOpenWeatherClient(cfg config.OpenWeatherConfig, cache mem.ForecastStore, cacheTTL time.Duration, log *zap.Logger) *OpenWeatherClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenWeatherClient{
		HTTP:     &http.Client{Timeout: timeout},
		APIKey:   cfg.APIKey,
		BaseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		Cache:    cache,
		CacheTTL: cacheTTL,
		log:      log,
	}
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, location string, start, end time.Time) []itinerary.ForecastSample {
	if c.APIKey == "" {
		c.log.Warn("OpenWeather API key not configured, skipping forecast")
		return []itinerary.ForecastSample{}
	}

	samples, err := c.Samples(ctx, location)
	if err != nil {
		c.log.Warn("weather lookup failed", zap.String("location", location), zap.Error(err))
		return []itinerary.ForecastSample{}
	}

	return itinerary.AlignWeather(samples, start, end)
}

// Samples returns the raw forecast for location, from cache when possible.
func (c *OpenWeatherClient) Samples(ctx context.Context, location string) ([]itinerary.RawSample, error) {
	if c.Cache != nil {
		if samples, ok := c.Cache.Get(ctx, location); ok {
			metrics.ForecastCacheLookups.WithLabelValues("hit").Inc()
			return samples, nil
		}
		metrics.ForecastCacheLookups.WithLabelValues("miss").Inc()
	}

	lat, lon, err := c.geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	samples, err := c.forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil && c.CacheTTL > 0 {
		if err := c.Cache.Set(ctx, location, samples, c.CacheTTL); err != nil {
			c.log.Warn("failed to cache forecast", zap.String("location", location), zap.Error(err))
		}
	}
	return samples, nil
}

type geocodeResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (c *OpenWeatherClient) geocode(ctx context.Context, location string) (float64, float64, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", "1")
	q.Set("appid", c.APIKey)

	var results []geocodeResult
	if err := c.getJSON(ctx, "geocode", "/geo/1.0/direct", q, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", errLocationNotFound, location)
	}
	return results[0].Lat, results[0].Lon, nil
}

type forecastPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
}

func (c *OpenWeatherClient) forecast(ctx context.Context, lat, lon float64) ([]itinerary.RawSample, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	var payload forecastPayload
	if err := c.getJSON(ctx, "forecast", "/data/2.5/forecast", q, &payload); err != nil {
		return nil, err
	}

	// timestamps are read on the destination's calendar
	zone := time.FixedZone("", payload.City.Timezone)

	samples := make([]itinerary.RawSample, 0, len(payload.List))
	for _, item := range payload.List {
		s := itinerary.RawSample{
			Time:        time.Unix(item.Dt, 0).In(zone),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			s.Description = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, op, path string, q url.Values, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.UpstreamDuration.WithLabelValues("openweather", op, result).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("openweather %s request: %w", op, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("openweather %s http error: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("openweather %s bad status: %s", op, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openweather %s decode: %w", op, err)
	}
	return nil
}
