package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTripRequest() TripPlanRequest {
	return TripPlanRequest{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		BudgetLevel: BudgetLow,
		Travelers:   2,
		Interests:   []string{"museums", "food"},
		TravelStyle: StyleRelaxed,
		Notes:       "no early starts",
	}
}

func TestBuildTripPlanPrompt_Deterministic(t *testing.T) {
	req := sampleTripRequest()
	assert.Equal(t, BuildTripPlanPrompt(req), BuildTripPlanPrompt(req))
}

func TestBuildTripPlanPrompt_Content(t *testing.T) {
	p := BuildTripPlanPrompt(sampleTripRequest())

	assert.Contains(t, p, "- Destination: Paris\n")
	assert.Contains(t, p, "- Dates: 2025-06-01 to 2025-06-03\n")
	assert.Contains(t, p, "- Travelers: 2\n")
	assert.Contains(t, p, "- Budget level: low\n")
	assert.Contains(t, p, "- Interests: museums, food\n")
	assert.Contains(t, p, "- Travel style: relaxed\n")
	assert.Contains(t, p, "- Notes: no early starts\n")
	assert.NotContains(t, p, "Starting city")

	assert.Contains(t, p, "relaxed: 2-3 activities per day")
	assert.Contains(t, p, `"dailyPlan"`)
	assert.Contains(t, p, "Example of one dailyPlan entry")
	assert.Contains(t, p, "no code fences")
}

func TestBuildTripPlanPrompt_EmptyInterests(t *testing.T) {
	req := sampleTripRequest()
	req.Interests = []string{}
	req.StartingCity = "Lyon"

	p := BuildTripPlanPrompt(req)
	assert.Contains(t, p, "- Interests: \n")
	assert.Contains(t, p, "- Starting city: Lyon\n")
}

func TestBuildItineraryPrompt(t *testing.T) {
	req := ItineraryRequest{ToDestination: "Rome", Duration: 4}
	p := BuildItineraryPrompt(req)

	assert.Equal(t, p, BuildItineraryPrompt(req))
	assert.Contains(t, p, "- Destination: Rome\n")
	assert.Contains(t, p, "- Duration: 4 day(s)\n")
	assert.Contains(t, p, "- Travelers: 1\n")
	assert.Contains(t, p, "- Budget: medium\n")
	assert.Contains(t, p, "- Travel style: balanced\n")
	assert.Contains(t, p, `"itinerary"`)
	assert.NotContains(t, p, "Travelling from")
	assert.NotContains(t, p, "6. Day 1")
}

func TestBuildItineraryPrompt_WithOrigin(t *testing.T) {
	p := BuildItineraryPrompt(ItineraryRequest{FromDestination: "London", ToDestination: "Paris", Duration: 3, TravelStyle: "packed"})

	assert.Contains(t, p, "- Travelling from: London\n")
	assert.Contains(t, p, "6. Day 1 covers the journey from London")
	assert.Contains(t, p, "packed: 4-5 activities per day")
}
