package trip

import (
	"fmt"
	"strings"

	"github.com/planora-ai/planora-api/internal/types"
)

// BuildSystemPrompt instructs the model to answer with compact JSON only.
func BuildSystemPrompt(req types.TripRequest, alloc types.BudgetAllocation, season string) string {
	return strings.Join([]string{
		"You are PLANORA AI, a Jharkhand travel expert and planner.",
		fmt.Sprintf("Deliver a %d-day plan for %s within %s.", req.Days, req.Destination, FormatINR(alloc.Total)),
		fmt.Sprintf("Season: %s. Output short, structured JSON only.", season),
		"Keys: tripOverview, dailyItinerary, budgetBreakdown, culturalExperiences, emergencyContacts, travelTips, weatherInfo, enhancementStatus.",
		"Keep under 1800 tokens.",
	}, " ")
}

// BuildUserPrompt summarizes the request for the model.
func BuildUserPrompt(req types.TripRequest) string {
	interests := "General sightseeing"
	if req.Preferences != nil && len(req.Preferences.Interests) > 0 {
		interests = strings.Join(req.Preferences.Interests, ", ")
	}
	startDate := "Flexible"
	if req.TravelDates != nil && req.TravelDates.StartDate != "" {
		startDate = req.TravelDates.StartDate
	}
	return strings.Join([]string{
		fmt.Sprintf("Destination: %s, Jharkhand.", req.Destination),
		fmt.Sprintf("Days: %d. Travelers: %d.", req.Days, req.Travelers),
		fmt.Sprintf("Budget: %s. Interests: %s.", req.Budget, interests),
		fmt.Sprintf("Dates: %s. Include costs, timings, weather tips, and recommendations.", startDate),
		"Return JSON only.",
	}, " ")
}
