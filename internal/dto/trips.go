package dto

import "encoding/json"

// SaveTripPlanRequest attaches a generated plan to a trip
type SaveTripPlanRequest struct {
	Kind     string          `json:"kind" enums:"trip_plan,itinerary" example:"trip_plan"`
	Plan     json.RawMessage `json:"plan" swaggertype:"object"`
	Fallback bool            `json:"fallback"`
}

// TripPlanResponse represents a saved trip plan in responses
type TripPlanResponse struct {
	TripID    string          `json:"trip_id"`
	OwnerID   string          `json:"owner_id"`
	Kind      string          `json:"kind"`
	Plan      json.RawMessage `json:"plan" swaggertype:"object"`
	Fallback  bool            `json:"fallback"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// TripPlanEnvelope wraps a saved plan
type TripPlanEnvelope struct {
	TripPlan TripPlanResponse `json:"trip_plan"`
}
