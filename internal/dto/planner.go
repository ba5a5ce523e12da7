package dto

import "TRAVELDIARY_BACK-END/internal/planner"

// TripPlanRequest documents the strict-flow body for swagger. Handlers parse
// the raw body with planner.ParseTripPlanRequest.
type TripPlanRequest struct {
	Destination  string   `json:"destination" example:"Paris"`
	StartDate    string   `json:"startDate" example:"2025-06-01"`
	EndDate      string   `json:"endDate" example:"2025-06-03"`
	StartingCity string   `json:"startingCity,omitempty" example:"London"`
	BudgetLevel  string   `json:"budgetLevel,omitempty" enums:"low,medium,high" example:"medium"`
	Travelers    int      `json:"travelers,omitempty" example:"2"`
	Interests    []string `json:"interests,omitempty"`
	TravelStyle  string   `json:"travelStyle,omitempty" enums:"relaxed,balanced,packed" example:"balanced"`
	Notes        string   `json:"notes,omitempty"`
}

// ItineraryRequest documents the lenient-flow body for swagger.
type ItineraryRequest struct {
	FromDestination string   `json:"fromDestination,omitempty" example:"London"`
	ToDestination   string   `json:"toDestination" example:"Paris"`
	Duration        int      `json:"duration" example:"3"`
	Budget          string   `json:"budget,omitempty" example:"medium"`
	Travelers       int      `json:"travelers,omitempty" example:"2"`
	Interests       []string `json:"interests,omitempty"`
	TravelStyle     string   `json:"travelStyle,omitempty" example:"balanced"`
}

// ItineraryResponse is a free-form plan plus flags describing how it was made
type ItineraryResponse struct {
	planner.FreeformPlan
	Fallback     bool `json:"fallback,omitempty"`
	IsQuotaError bool `json:"isQuotaError,omitempty"`
	// DaysCapped is set when the fallback elaborated fewer days than requested
	DaysCapped    bool `json:"daysCapped,omitempty"`
	RequestedDays int  `json:"requestedDays,omitempty"`
}
