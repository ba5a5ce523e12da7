package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlanKind identifies which plan contract a saved plan follows
type PlanKind string

const (
	PlanKindTripPlan  PlanKind = "trip_plan"
	PlanKindItinerary PlanKind = "itinerary"
)

// Valid reports whether k is a known plan kind
func (k PlanKind) Valid() bool {
	return k == PlanKindTripPlan || k == PlanKindItinerary
}

// TripPlanRecord is a generated plan attached to a trip. Plan is stored as an
// opaque JSON document.
type TripPlanRecord struct {
	TripID    uuid.UUID       `json:"trip_id" db:"trip_id"`
	OwnerID   uuid.UUID       `json:"owner_id" db:"owner_id"`
	Kind      PlanKind        `json:"kind" db:"kind"`
	Plan      json.RawMessage `json:"plan" db:"plan"`
	Fallback  bool            `json:"fallback" db:"fallback"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
