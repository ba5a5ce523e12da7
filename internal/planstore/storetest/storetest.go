// Package storetest holds the behaviour every planstore.Store must share.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/models"
	"TRAVELDIARY_BACK-END/internal/planstore"
)

const samplePlan = `{"summary":"Two days in Rome","dailyPlan":[{"day":1,"title":"Ancient Rome","activities":[{"name":"Colosseum","description":"Arena tour","estimatedCost":"~18 EUR"}]}]}`

func record(tripID, ownerID uuid.UUID, plan string) models.TripPlanRecord {
	return models.TripPlanRecord{
		TripID:  tripID,
		OwnerID: ownerID,
		Kind:    models.PlanKindTripPlan,
		Plan:    []byte(plan),
	}
}

// Run exercises store against the planstore.Store contract. Each subtest
// uses fresh trip IDs so a shared database can be reused.
func Run(t *testing.T, store planstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("save and get", func(t *testing.T) {
		tripID, owner := uuid.New(), uuid.New()

		saved, err := store.Save(ctx, record(tripID, owner, samplePlan))
		require.NoError(t, err)
		assert.Equal(t, tripID, saved.TripID)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.False(t, saved.UpdatedAt.IsZero())

		got, err := store.Get(ctx, tripID)
		require.NoError(t, err)
		assert.Equal(t, owner, got.OwnerID)
		assert.Equal(t, models.PlanKindTripPlan, got.Kind)
		assert.JSONEq(t, samplePlan, string(got.Plan))
		assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, planstore.ErrNotFound)
	})

	t.Run("replace keeps created_at", func(t *testing.T) {
		tripID, owner := uuid.New(), uuid.New()

		first, err := store.Save(ctx, record(tripID, owner, samplePlan))
		require.NoError(t, err)

		next := record(tripID, owner, `{"fromDestination":"","toDestination":"Rome","duration":2,"itinerary":[{"day":1,"title":"Arrival","activities":[{"time":"09:00","activity":"Walk"}]}]}`)
		next.Kind = models.PlanKindItinerary
		next.Fallback = true
		second, err := store.Save(ctx, next)
		require.NoError(t, err)
		assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Millisecond)
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

		got, err := store.Get(ctx, tripID)
		require.NoError(t, err)
		assert.Equal(t, models.PlanKindItinerary, got.Kind)
		assert.True(t, got.Fallback)
		assert.Contains(t, string(got.Plan), "Arrival")
	})

	t.Run("other owner cannot overwrite", func(t *testing.T) {
		tripID, owner := uuid.New(), uuid.New()
		_, err := store.Save(ctx, record(tripID, owner, samplePlan))
		require.NoError(t, err)

		_, err = store.Save(ctx, record(tripID, uuid.New(), `{"summary":"hijack","dailyPlan":[]}`))
		assert.ErrorIs(t, err, planstore.ErrForbidden)

		got, err := store.Get(ctx, tripID)
		require.NoError(t, err)
		assert.Equal(t, owner, got.OwnerID)
		assert.JSONEq(t, samplePlan, string(got.Plan))
	})

	t.Run("delete", func(t *testing.T) {
		tripID, owner := uuid.New(), uuid.New()
		_, err := store.Save(ctx, record(tripID, owner, samplePlan))
		require.NoError(t, err)

		assert.ErrorIs(t, store.Delete(ctx, tripID, uuid.New()), planstore.ErrForbidden)
		require.NoError(t, store.Delete(ctx, tripID, owner))
		assert.ErrorIs(t, store.Delete(ctx, tripID, owner), planstore.ErrNotFound)

		_, err = store.Get(ctx, tripID)
		assert.ErrorIs(t, err, planstore.ErrNotFound)
	})

	t.Run("concurrent saves", func(t *testing.T) {
		owner := uuid.New()
		ids := make([]uuid.UUID, 8)
		for i := range ids {
			ids[i] = uuid.New()
		}

		var wg sync.WaitGroup
		errs := make(chan error, len(ids))
		for _, id := range ids {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				_, err := store.Save(ctx, record(id, owner, samplePlan))
				errs <- err
			}(id)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		for _, id := range ids {
			_, err := store.Get(ctx, id)
			assert.NoError(t, err)
		}
	})
}
