package itinerary

import (
	"math"
	"time"
)

// RawSample is a single provider forecast point, typically at 3-hour resolution.
// Time carries the location whose calendar the sample belongs to.
type RawSample struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// ForecastSample is the representative forecast of one calendar day.
type ForecastSample struct {
	Date        time.Time `json:"date"`
	Temperature int       `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// AlignWeather picks, for every calendar day in [start, end], the first sample
// falling on that day. Days without samples are omitted, so the result may be
// shorter than the range. start and end are read as calendar dates.
func AlignWeather(samples []RawSample, start, end time.Time) []ForecastSample {
	out := make([]ForecastSample, 0)

	for _, day := range DatesInRange(start, end) {
		sample, ok := firstSampleOn(samples, day)
		if !ok {
			continue
		}
		out = append(out, ForecastSample{
			Date:        day,
			Temperature: roundHalfUp(sample.Temperature),
			Description: sample.Description,
			Icon:        sample.Icon,
		})
	}

	return out
}

// DatesInRange lists every calendar date from start to end inclusive.
func DatesInRange(start, end time.Time) []time.Time {
	dates := make([]time.Time, 0)
	last := civilDate(end)
	for day := civilDate(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

func firstSampleOn(samples []RawSample, day time.Time) (RawSample, bool) {
	for _, s := range samples {
		if civilDate(s.Time).Equal(day) {
			return s, true
		}
	}
	return RawSample{}, false
}

// roundHalfUp rounds halves toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// civilDate drops the clock and zone, keeping the date as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
