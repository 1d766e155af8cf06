package testutil_test

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-map/migrations"
	"github.com/pkordes/workout-map/testutil"
)

// TestMigrations applies every migration with migrations.Up, checks the
// workouts table and its constraints, then rolls everything back.
// Skipped when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	// Another package's TestMain may already have migrated this database.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	require.NoError(t, migrations.Up(ctx, db, slog.New(slog.DiscardHandler)))
	assert.True(t, tableExists(t, db, "workouts"))

	// A second run finds nothing pending.
	require.NoError(t, migrations.Up(ctx, db, slog.New(slog.DiscardHandler)))

	rejected := []struct {
		name string
		stmt string
	}{
		{"running without cadence", `INSERT INTO workouts (kind, distance, duration, latitude, longitude)
			VALUES ('running', 5, 25, 10, 10)`},
		{"cycling with cadence", `INSERT INTO workouts (kind, distance, duration, latitude, longitude, cadence, elevation_gain)
			VALUES ('cycling', 20, 60, 10, 10, 90, 100)`},
		{"latitude out of range", `INSERT INTO workouts (kind, distance, duration, latitude, longitude, cadence)
			VALUES ('running', 5, 25, 91, 10, 170)`},
		{"zero distance", `INSERT INTO workouts (kind, distance, duration, latitude, longitude, cadence)
			VALUES ('running', 0, 25, 10, 10, 170)`},
		{"unknown kind", `INSERT INTO workouts (kind, distance, duration, latitude, longitude)
			VALUES ('rowing', 5, 25, 10, 10)`},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx, tc.stmt)
			assert.Error(t, err, "expected a constraint violation")
		})
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	assert.False(t, tableExists(t, db, "workouts"))
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists))
	return exists
}
