package itinerary

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const defaultBudget = 1000

type BudgetItem struct {
	Category string `json:"category"`
	Cost     int64  `json:"cost"`
}

type BudgetBreakdown struct {
	Items []BudgetItem `json:"items"`
	Total int64        `json:"total"`
}

var budgetShares = []struct {
	category string
	share    float64
}{
	{"Transportation", 0.3},
	{"Accommodation", 0.4},
	{"Food & Dining", 0.2},
	{"Activities & Sightseeing", 0.1},
}

// SplitBudget estimates per-category costs from a free-form budget string
// such as "₹50,000". Strings without digits fall back to 1000.
func SplitBudget(budget string) BudgetBreakdown {
	total := parseBudgetAmount(budget)

	out := BudgetBreakdown{Items: make([]BudgetItem, 0, len(budgetShares))}
	for _, s := range budgetShares {
		cost := int64(math.Round(float64(total) * s.share))
		out.Items = append(out.Items, BudgetItem{Category: s.category, Cost: cost})
		out.Total += cost
	}
	return out
}

func parseBudgetAmount(budget string) int64 {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, budget)

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || amount == 0 {
		return defaultBudget
	}
	return amount
}
