package mem

import (
	"context"
	"strings"
	"sync"
	"time"

	"tripplanner/internal/itinerary"
)

type ForecastStore interface {
	Set(ctx context.Context, location string, samples []itinerary.RawSample, ttl time.Duration) error

	// Get returns the samples cached for location. A miss, an expired entry
	// and a backend failure all report ok == false.
	Get(ctx context.Context, location string) ([]itinerary.RawSample, bool)
}

// ForecastKey normalizes a destination so "Paris " and "paris" share an entry.
func ForecastKey(location string) string {
	return "forecast:" + strings.ToLower(strings.Join(strings.Fields(location), " "))
}

type entry struct {
	samples   []itinerary.RawSample
	expiresAt time.Time
}

type MemoryForecasts struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewMemoryForecasts() *MemoryForecasts {
	return &MemoryForecasts{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryForecasts) Set(_ context.Context, location string, samples []itinerary.RawSample, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[ForecastKey(location)] = entry{
		samples:   append([]itinerary.RawSample(nil), samples...),
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryForecasts) Get(_ context.Context, location string) ([]itinerary.RawSample, bool) {
	key := ForecastKey(location)

	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.now().After(e.expiresAt) {
		s.evictExpired(key)
		return nil, false
	}
	return append([]itinerary.RawSample(nil), e.samples...), true
}

// evictExpired re-reads the entry under the write lock so a Set that raced
// with the read above is kept.
func (s *MemoryForecasts) evictExpired(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[key]; ok && s.now().After(e.expiresAt) {
		delete(s.data, key)
	}
}
