package itinerary

import "strings"

const (
	ConditionRain  = "rain"
	ConditionCloud = "cloud"
	ConditionSun   = "sun"
)

// ConditionOf buckets a provider description into the three weather cards
// the client knows how to draw.
func ConditionOf(description string) string {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "rain"), strings.Contains(desc, "drizzle"):
		return ConditionRain
	case strings.Contains(desc, "cloud"):
		return ConditionCloud
	default:
		return ConditionSun
	}
}
