package planstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"TRAVELDIARY_BACK-END/internal/models"
)

// MemoryStore keeps plans in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]models.TripPlanRecord
	now   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		plans: make(map[uuid.UUID]models.TripPlanRecord),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Save(_ context.Context, rec models.TripPlanRecord) (models.TripPlanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec.CreatedAt = now
	if existing, ok := s.plans[rec.TripID]; ok {
		if existing.OwnerID != rec.OwnerID {
			return models.TripPlanRecord{}, ErrForbidden
		}
		rec.CreatedAt = existing.CreatedAt
	}
	rec.UpdatedAt = now
	rec.Plan = append(json.RawMessage(nil), rec.Plan...)
	s.plans[rec.TripID] = rec
	return rec, nil
}

func (s *MemoryStore) Get(_ context.Context, tripID uuid.UUID) (models.TripPlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.plans[tripID]
	if !ok {
		return models.TripPlanRecord{}, ErrNotFound
	}
	rec.Plan = append(json.RawMessage(nil), rec.Plan...)
	return rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, tripID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.plans[tripID]
	if !ok {
		return ErrNotFound
	}
	if rec.OwnerID != ownerID {
		return ErrForbidden
	}
	delete(s.plans, tripID)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }
