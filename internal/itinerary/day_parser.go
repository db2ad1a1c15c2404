package itinerary

import (
	"regexp"
	"strings"
)

// DayPlan is one day of a generated itinerary.
type DayPlan struct {
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// HeaderMatcher decides whether a line opens a new day. It returns the day
// number as written in the line.
type HeaderMatcher interface {
	MatchHeader(line string) (number string, ok bool)
}

// HeaderMatcherFunc adapts a plain function to HeaderMatcher.
type HeaderMatcherFunc func(line string) (string, bool)

func (f HeaderMatcherFunc) MatchHeader(line string) (string, bool) {
	return f(line)
}

// RegexpHeaderMatcher matches headers with a pattern whose first capture
// group is the day number.
type RegexpHeaderMatcher struct {
	pattern *regexp.Regexp
}

func NewRegexpHeaderMatcher(pattern *regexp.Regexp) *RegexpHeaderMatcher {
	return &RegexpHeaderMatcher{pattern: pattern}
}

func (m *RegexpHeaderMatcher) MatchHeader(line string) (string, bool) {
	match := m.pattern.FindStringSubmatch(line)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

var (
	// [\s\p{Z}] also covers non-breaking and other Unicode spaces.
	dayHeaderPattern = regexp.MustCompile(`(?i)^day[\s\p{Z}]*(\d+)(?::|\.|[\s\p{Z}]|$)`)
	bulletPattern    = regexp.MustCompile(`^[-•][\s\p{Z}]*`)
	numberedPattern  = regexp.MustCompile(`^\d+\.[\s\p{Z}]*`)
)

// DefaultHeaderMatcher accepts "Day 3", "DAY 3:", "day3." and similar.
var DefaultHeaderMatcher HeaderMatcher = NewRegexpHeaderMatcher(dayHeaderPattern)

// DayParser splits free-form itinerary text into days.
type DayParser struct {
	matcher HeaderMatcher
}

func NewDayParser(matcher HeaderMatcher) *DayParser {
	if matcher == nil {
		matcher = DefaultHeaderMatcher
	}
	return &DayParser{matcher: matcher}
}

// ParseDays splits text using the default header rule.
func ParseDays(text string) []DayPlan {
	return NewDayParser(nil).Parse(text)
}

// Parse never fails: text without recognizable headers yields an empty slice.
// Days are returned in the order their headers appear, a trailing header
// without activities is dropped.
func (p *DayParser) Parse(text string) []DayPlan {
	days := make([]DayPlan, 0)
	var current *DayPlan

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.ReplaceAll(line, "*", ""))

		if number, ok := p.matcher.MatchHeader(line); ok {
			if current != nil {
				days = append(days, *current)
			}
			current = &DayPlan{Title: "Day " + number, Activities: []string{}}
			continue
		}

		if current == nil {
			continue
		}

		if activity := cleanActivity(line); activity != "" {
			current.Activities = append(current.Activities, activity)
		}
	}

	if current != nil && len(current.Activities) > 0 {
		days = append(days, *current)
	}

	return days
}

func cleanActivity(line string) string {
	line = bulletPattern.ReplaceAllString(line, "")
	line = numberedPattern.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
