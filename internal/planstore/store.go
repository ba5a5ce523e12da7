// Package planstore persists generated plans attached to trips.
package planstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"TRAVELDIARY_BACK-END/internal/models"
)

var (
	// ErrNotFound is returned when no plan is attached to the trip
	ErrNotFound = errors.New("trip plan not found")
	// ErrForbidden is returned when the trip plan belongs to another user
	ErrForbidden = errors.New("trip plan belongs to another user")
)

// Store is the plan archive. Implementations must be safe for concurrent use.
type Store interface {
	// Save attaches rec.Plan to rec.TripID, replacing any plan the same owner
	// saved before. CreatedAt is kept across replacements.
	Save(ctx context.Context, rec models.TripPlanRecord) (models.TripPlanRecord, error)
	Get(ctx context.Context, tripID uuid.UUID) (models.TripPlanRecord, error)
	// Delete detaches the plan if ownerID owns it.
	Delete(ctx context.Context, tripID, ownerID uuid.UUID) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
