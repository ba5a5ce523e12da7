package planstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/models"
	"TRAVELDIARY_BACK-END/internal/planstore"
	"TRAVELDIARY_BACK-END/internal/planstore/storetest"
)

func TestMemoryStore_Contract(t *testing.T) {
	storetest.Run(t, planstore.NewMemoryStore())
}

func TestMemoryStore_CopiesPlanBytes(t *testing.T) {
	s := planstore.NewMemoryStore()
	ctx := context.Background()
	tripID := uuid.New()

	plan := json.RawMessage(`{"summary":"a"}`)
	_, err := s.Save(ctx, models.TripPlanRecord{TripID: tripID, OwnerID: uuid.New(), Kind: models.PlanKindTripPlan, Plan: plan})
	require.NoError(t, err)

	plan[2] = 'X'
	got, err := s.Get(ctx, tripID)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"a"}`, string(got.Plan))

	got.Plan[2] = 'Y'
	again, err := s.Get(ctx, tripID)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"a"}`, string(again.Plan))
}
