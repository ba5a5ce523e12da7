// Package mongostore is the MongoDB plan archive. Each plan is one document
// keyed by trip ID, with the plan body stored as an embedded document.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/models"
	"TRAVELDIARY_BACK-END/internal/planstore"
)

// planDocument is the stored form of models.TripPlanRecord. IDs are kept as
// canonical strings so documents stay readable from the mongo shell.
type planDocument struct {
	TripID    string    `bson:"_id"`
	OwnerID   string    `bson:"owner_id"`
	Kind      string    `bson:"kind"`
	Plan      bson.D    `bson:"plan"`
	Fallback  bool      `bson:"fallback"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store implements planstore.Store on a mongo collection.
type Store struct {
	client       *mongo.Client
	coll         *mongo.Collection
	queryTimeout time.Duration
	now          func() time.Time
}

var _ planstore.Store = (*Store)(nil)

// Connect dials cfg.URI and pings the primary.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Printf("[mongostore] connected, using %s.%s", cfg.Database, cfg.Collection)
	return New(client, client.Database(cfg.Database).Collection(cfg.Collection), cfg.QueryTimeout), nil
}

// New wraps an existing client and collection.
func New(client *mongo.Client, coll *mongo.Collection, queryTimeout time.Duration) *Store {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &Store{
		client:       client,
		coll:         coll,
		queryTimeout: queryTimeout,
		now:          func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *Store) Save(ctx context.Context, rec models.TripPlanRecord) (models.TripPlanRecord, error) {
	var plan bson.D
	if err := bson.UnmarshalExtJSON(rec.Plan, false, &plan); err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("convert plan to bson: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	now := s.now()
	// Matching on owner makes a save over someone else's plan fall through to
	// an insert, which then collides on _id.
	filter := bson.M{"_id": rec.TripID.String(), "owner_id": rec.OwnerID.String()}
	update := bson.M{
		"$set": bson.M{
			"kind":       string(rec.Kind),
			"plan":       plan,
			"fallback":   rec.Fallback,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc planDocument
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		return models.TripPlanRecord{}, planstore.ErrForbidden
	}
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("save trip plan: %w", err)
	}
	return fromDocument(doc)
}

func (s *Store) Get(ctx context.Context, tripID uuid.UUID) (models.TripPlanRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var doc planDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": tripID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TripPlanRecord{}, planstore.ErrNotFound
	}
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("get trip plan: %w", err)
	}
	return fromDocument(doc)
}

func (s *Store) Delete(ctx context.Context, tripID, ownerID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": tripID.String(), "owner_id": ownerID.String()})
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if res.DeletedCount > 0 {
		return nil
	}

	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": tripID.String()}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if n > 0 {
		return planstore.ErrForbidden
	}
	return planstore.ErrNotFound
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func fromDocument(doc planDocument) (models.TripPlanRecord, error) {
	tripID, err := uuid.Parse(doc.TripID)
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("stored trip id %q: %w", doc.TripID, err)
	}
	ownerID, err := uuid.Parse(doc.OwnerID)
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("stored owner id %q: %w", doc.OwnerID, err)
	}
	plan, err := bson.MarshalExtJSON(doc.Plan, false, false)
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("convert plan to json: %w", err)
	}
	return models.TripPlanRecord{
		TripID:    tripID,
		OwnerID:   ownerID,
		Kind:      models.PlanKind(doc.Kind),
		Plan:      plan,
		Fallback:  doc.Fallback,
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	}, nil
}
