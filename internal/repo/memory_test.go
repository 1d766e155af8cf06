package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/repo"
)

func TestMemoryWorkoutRepo_CreateAssignsID(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	got, err := r.Create(ctx, workoutFixture(t))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestMemoryWorkoutRepo_RoundTrip(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryWorkoutRepo_ReturnsCopies(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	*created.Cadence = 1
	created.CustomMetrics["mutated"] = true

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 180.0, *got.Cadence)
	assert.NotContains(t, got.CustomMetrics, "mutated")
}

func TestMemoryWorkoutRepo_CopiesNestedMetrics(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()
	in := workoutFixture(t)
	in.CustomMetrics = map[string]any{
		"heartRate": map[string]any{"avg": 150.0},
		"splits":    []any{5.1, map[string]any{"km": 2.0}},
	}

	created, err := r.Create(ctx, in)
	require.NoError(t, err)

	// Mutate nested values through both the input and the returned copy.
	in.CustomMetrics["heartRate"].(map[string]any)["avg"] = 1.0
	created.CustomMetrics["splits"].([]any)[0] = 0.0
	created.CustomMetrics["splits"].([]any)[1].(map[string]any)["km"] = 0.0

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"heartRate": map[string]any{"avg": 150.0},
		"splits":    []any{5.1, map[string]any{"km": 2.0}},
	}, got.CustomMetrics)
}

func TestMemoryWorkoutRepo_ListKeepsInsertionOrder(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	var ids []uuid.UUID
	for range 3 {
		w, err := r.Create(ctx, workoutFixture(t))
		require.NoError(t, err)
		ids = append(ids, w.ID)
	}

	list, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, w := range list {
		assert.Equal(t, ids[i], w.ID)
	}
}

func TestMemoryWorkoutRepo_ListEmptyIsNonNil(t *testing.T) {
	list, err := repo.NewMemoryWorkoutRepo().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryWorkoutRepo_Update(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	created.Distance = 21.1
	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, 21.1, updated.Distance)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryWorkoutRepo_NotFound(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()
	ghost := workoutFixture(t)
	ghost.ID = uuid.New()

	_, err := r.GetByID(ctx, ghost.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.Update(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = r.Delete(ctx, ghost.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryWorkoutRepo_Delete(t *testing.T) {
	r := repo.NewMemoryWorkoutRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, workoutFixture(t))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
