// Package pgstore is the PostgreSQL plan archive. Plans live in a JSONB column.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/models"
	"TRAVELDIARY_BACK-END/internal/planstore"
)

// Store implements planstore.Store on a pgx pool.
type Store struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
	now          func() time.Time
}

var _ planstore.Store = (*Store)(nil)

// Connect opens a pool for cfg, pings it and makes sure the table exists.
func Connect(ctx context.Context, cfg config.DatabaseConfig, dsn string) (*Store, error) {
	// Simple protocol keeps the pool usable behind PgBouncer in transaction mode
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "traveldiary-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.QueryTimeout.Milliseconds(), 10)
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := New(pool, cfg.QueryTimeout)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Printf("[pgstore] connected to %s:%s/%s", cfg.Host, cfg.Port, cfg.Name)
	return s, nil
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool, queryTimeout time.Duration) *Store {
	if queryTimeout <= 0 {
		queryTimeout = 30 * time.Second
	}
	return &Store{
		db:           pool,
		queryTimeout: queryTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// EnsureSchema creates the trip_plans table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS trip_plans (
		trip_id    UUID PRIMARY KEY,
		owner_id   UUID NOT NULL,
		kind       TEXT NOT NULL,
		plan       JSONB NOT NULL,
		fallback   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`); err != nil {
		return fmt.Errorf("create trip_plans: %w", err)
	}
	if _, err := s.db.Exec(ctx, `CREATE INDEX IF NOT EXISTS trip_plans_owner_idx ON trip_plans (owner_id)`); err != nil {
		return fmt.Errorf("create trip_plans_owner_idx: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, rec models.TripPlanRecord) (models.TripPlanRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	// The conditional update leaves other owners' rows untouched and returns
	// no row for them.
	err := s.db.QueryRow(ctx,
		`INSERT INTO trip_plans (trip_id, owner_id, kind, plan, fallback, created_at, updated_at)
         VALUES ($1, $2, $3, $4::jsonb, $5, $6, $6)
         ON CONFLICT (trip_id) DO UPDATE
            SET kind = EXCLUDED.kind, plan = EXCLUDED.plan, fallback = EXCLUDED.fallback, updated_at = EXCLUDED.updated_at
          WHERE trip_plans.owner_id = EXCLUDED.owner_id
         RETURNING created_at, updated_at`,
		rec.TripID, rec.OwnerID, string(rec.Kind), string(rec.Plan), rec.Fallback, s.now(),
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TripPlanRecord{}, planstore.ErrForbidden
	}
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("save trip plan: %w", err)
	}
	return rec, nil
}

func (s *Store) Get(ctx context.Context, tripID uuid.UUID) (models.TripPlanRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		rec  models.TripPlanRecord
		kind string
		plan []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT trip_id, owner_id, kind, plan, fallback, created_at, updated_at
           FROM trip_plans WHERE trip_id = $1`,
		tripID,
	).Scan(&rec.TripID, &rec.OwnerID, &kind, &plan, &rec.Fallback, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TripPlanRecord{}, planstore.ErrNotFound
	}
	if err != nil {
		return models.TripPlanRecord{}, fmt.Errorf("get trip plan: %w", err)
	}
	rec.Kind = models.PlanKind(kind)
	rec.Plan = plan
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, tripID, ownerID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM trip_plans WHERE trip_id = $1 AND owner_id = $2`, tripID, ownerID)
	if err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trip_plans WHERE trip_id = $1)`, tripID).Scan(&exists); err != nil {
		return fmt.Errorf("delete trip plan: %w", err)
	}
	if exists {
		return planstore.ErrForbidden
	}
	return planstore.ErrNotFound
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close(context.Context) error {
	s.db.Close()
	return nil
}
