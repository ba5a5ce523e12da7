package pgstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/planstore/storetest"
)

// Set TEST_DATABASE_URL to a disposable database to run these tests.
func TestStore_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := New(pool, 10*time.Second)
	require.NoError(t, s.EnsureSchema(ctx))

	storetest.Run(t, s)
}
