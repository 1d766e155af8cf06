// Package testutil provides Postgres helpers for integration tests. Every
// helper skips (or steps aside) when TEST_DATABASE_URL is not set, so the unit
// suite runs without a database.
package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/workout-map/migrations"
)

// DSNEnv names the variable holding the integration database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool returns a pinged pool on the integration database, closed when the
// test finishes. The test is skipped when DSNEnv is unset.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}

	pool, err := openPool(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle over NewPool, for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MigrateMain brings the integration database up to the latest migration and
// then runs the package's tests. Call it from TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutil.MigrateMain(m)) }
//
// Without DSNEnv it only runs the tests; the database tests skip themselves.
func MigrateMain(m *testing.M) int {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		return m.Run()
	}

	ctx := context.Background()
	pool, err := openPool(ctx, dsn)
	if err != nil {
		panic("testutil.MigrateMain: " + err.Error())
	}
	db := stdlib.OpenDBFromPool(pool)
	err = migrations.Up(ctx, db, slog.New(slog.DiscardHandler))
	_ = db.Close()
	pool.Close()
	if err != nil {
		panic("testutil.MigrateMain: " + err.Error())
	}
	return m.Run()
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
