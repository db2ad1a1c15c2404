package services

import (
	"fmt"
	"strings"

	"tripplanner/pkg/utils"
)

// buildItineraryPrompt renders the instruction sent to the text generator.
// Dates are written long-form ("May 1, 2024") and the model is asked for
// "Day N" headers so the stored text can later be split into days.
func buildItineraryPrompt(trip tripRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Plan a %d-day trip from %s to %s from %s to %s with a budget of %s for %d people. ",
		trip.Days, trip.From, trip.Destination,
		utils.FormatLongDate(trip.Start), utils.FormatLongDate(trip.End),
		trip.Budget, trip.People))
	prompt.WriteString(fmt.Sprintf("Include places based on these interests: %s. ", trip.Interests))
	prompt.WriteString("Format the response with clear day headers (Day 1, Day 2, etc.) and bullet points for activities.")

	return prompt.String()
}
