package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/repo"
	"github.com/pkordes/workout-map/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// WorkoutRepo backed by that transaction. The transaction is rolled back when
// the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL; the test is skipped otherwise.
func newTestRepo(t *testing.T) repo.WorkoutRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewWorkoutRepo(tx)
}

// workoutFixture returns a valid running workout built through the domain
// constructor. Callers can override individual fields afterwards.
func workoutFixture(t *testing.T) domain.Workout {
	t.Helper()
	cadence := 180.0
	created := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)
	w, err := domain.NewWorkout(domain.Fields{
		Kind:          domain.KindRunning,
		Distance:      5,
		Duration:      30,
		Coordinates:   &domain.Coordinates{Latitude: 51.5, Longitude: -0.1},
		Cadence:       &cadence,
		CustomMetrics: map[string]any{"shoes": "trail"},
		CreatedAt:     &created,
	})
	require.NoError(t, err)
	return w
}

func TestWorkoutRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := workoutFixture(t)
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Kind, got.Kind)
	assert.Equal(t, input.Distance, got.Distance)
	assert.Equal(t, input.Duration, got.Duration)
	assert.Equal(t, *input.Coordinates, *got.Coordinates)
	require.NotNil(t, got.Cadence)
	assert.Equal(t, 180.0, *got.Cadence)
	assert.Nil(t, got.ElevationGain)
	assert.Equal(t, "trail", got.CustomMetrics["shoes"])
	assert.True(t, got.CreatedAt.Equal(input.CreatedAt), "CreatedAt mismatch")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestWorkoutRepo_Create_Cycling(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	elevation := -50.0
	input := workoutFixture(t)
	input.Kind = domain.KindCycling
	input.Cadence = nil
	input.ElevationGain = &elevation

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Cadence)
	require.NotNil(t, got.ElevationGain)
	assert.Equal(t, -50.0, *got.ElevationGain)
}

func TestWorkoutRepo_Create_VariantConstraint(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// Bypasses the domain constructor: the table constraint must still hold.
	input := workoutFixture(t)
	input.Cadence = nil

	_, err := r.Create(ctx, input)

	assert.Error(t, err)
}

func TestWorkoutRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestWorkoutRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkoutRepo_List(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := workoutFixture(t)
	second := workoutFixture(t)
	second.CreatedAt = first.CreatedAt.Add(time.Hour)

	_, err := r.Create(ctx, second)
	require.NoError(t, err)
	_, err = r.Create(ctx, first)
	require.NoError(t, err)

	workouts, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(workouts), 2)
	for i := 1; i < len(workouts); i++ {
		assert.False(t, workouts[i].CreatedAt.Before(workouts[i-1].CreatedAt), "list must be ordered by created_at")
	}
}

func TestWorkoutRepo_Update(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	elevation := 240.0
	created.Kind = domain.KindCycling
	created.Cadence = nil
	created.ElevationGain = &elevation
	created.CustomMetrics = map[string]any{}

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, domain.KindCycling, updated.Kind)
	assert.Nil(t, updated.Cadence)
	assert.Equal(t, 240.0, *updated.ElevationGain)
	assert.Empty(t, updated.CustomMetrics)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestWorkoutRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)

	ghost := workoutFixture(t)
	ghost.ID = uuid.New()

	_, err := r.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkoutRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "workout should be gone after delete")
}

func TestWorkoutRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
