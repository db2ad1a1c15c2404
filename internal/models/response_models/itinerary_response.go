package response_models

import (
	"time"

	"tripplanner/internal/itinerary"
)

type WeatherResponse struct {
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Condition   string `json:"condition"`
}

type GenerateItineraryResponse struct {
	ID            string            `json:"_id"`
	ItineraryText string            `json:"itineraryText"`
	WeatherData   []WeatherResponse `json:"weatherData"`
}

type ItineraryResponse struct {
	ID            string            `json:"_id"`
	From          string            `json:"from"`
	Destination   string            `json:"destination"`
	Budget        string            `json:"budget"`
	Interests     string            `json:"interests"`
	Days          int               `json:"days"`
	People        int               `json:"people"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	ItineraryText string            `json:"itineraryText"`
	WeatherData   []WeatherResponse `json:"weatherData"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ItineraryDetailResponse adds the views derived from the stored text and
// budget; they are recomputed on every read.
type ItineraryDetailResponse struct {
	ItineraryResponse
	DayPlans        []itinerary.DayPlan       `json:"dayPlans"`
	BudgetBreakdown itinerary.BudgetBreakdown `json:"budgetBreakdown"`
}
