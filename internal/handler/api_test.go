package handler_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-map/internal/handler"
	"github.com/pkordes/workout-map/internal/handler/gen"
	"github.com/pkordes/workout-map/internal/repo"
	"github.com/pkordes/workout-map/internal/service"
)

// newAPI wires the real service over the in-memory store behind the generated
// router, so these tests exercise every layer except Postgres.
func newAPI() http.Handler {
	svc := service.NewWorkoutService(repo.NewMemoryWorkoutRepo())
	return handler.NewServer(svc, slog.New(slog.DiscardHandler)).Routes(nil)
}

func decodeWorkout(t *testing.T, body []byte) gen.Workout {
	t.Helper()
	var w gen.Workout
	require.NoError(t, json.Unmarshal(body, &w))
	return w
}

func TestAPI_CreateRunning(t *testing.T) {
	api := newAPI()

	rec := serve(api, http.MethodPost, "/workouts", jsonBody(t, map[string]any{
		"kind":        "running",
		"distance":    5.2,
		"duration":    24,
		"cadence":     180,
		"coordinates": map[string]any{"latitude": 39.7, "longitude": -105.2},
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	w := decodeWorkout(t, rec.Body.Bytes())
	assert.NotEmpty(t, w.Id)
	require.NotNil(t, w.Cadence)
	assert.Equal(t, 180.0, *w.Cadence)
	assert.Nil(t, w.ElevationGain)
	assert.NotNil(t, w.CustomMetrics)
	assert.Equal(t, fmt.Sprintf("Running on %s %d", w.CreatedAt.Month(), w.CreatedAt.Day()), w.Description)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "elevationGain")
}

func TestAPI_CreateCyclingWithNegativeElevation(t *testing.T) {
	api := newAPI()

	rec := serve(api, http.MethodPost, "/workouts", jsonBody(t, map[string]any{
		"kind":          "cycling",
		"distance":      27,
		"duration":      95,
		"elevationGain": -50,
		"coordinates":   map[string]any{"latitude": 46.5, "longitude": 7.9},
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	w := decodeWorkout(t, rec.Body.Bytes())
	require.NotNil(t, w.ElevationGain)
	assert.Equal(t, -50.0, *w.ElevationGain)
	assert.Nil(t, w.Cadence)
	assert.Equal(t, gen.Cycling, w.Kind)
}

func TestAPI_CoordinatesCheckedFirst(t *testing.T) {
	api := newAPI()

	// Every other field is invalid too; coordinates must still be reported.
	rec := serve(api, http.MethodPost, "/workouts", jsonBody(t, map[string]any{
		"kind":        "swimming",
		"distance":    -1,
		"coordinates": map[string]any{"latitude": 91, "longitude": 0},
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	require.NotNil(t, resp.Field)
	assert.Equal(t, "coordinates", *resp.Field)
}

func TestAPI_CreateGetUpdateDelete(t *testing.T) {
	api := newAPI()

	rec := serve(api, http.MethodPost, "/workouts", jsonBody(t, map[string]any{
		"kind":          "cycling",
		"distance":      20,
		"duration":      60,
		"elevationGain": 300,
		"coordinates":   map[string]any{"latitude": 10, "longitude": 20},
		"customMetrics": map[string]any{"power": 210},
	}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeWorkout(t, rec.Body.Bytes())
	path := "/workouts/" + created.Id.String()

	// Repeated reads return the same document.
	first := serve(api, http.MethodGet, path, nil)
	second := serve(api, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 210.0, decodeWorkout(t, first.Body.Bytes()).CustomMetrics["power"])

	// Switching to running without a cadence is rejected and nothing changes.
	rec = serve(api, http.MethodPatch, path, jsonBody(t, map[string]any{"kind": "running"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "cadence", *decodeError(t, rec).Field)

	rec = serve(api, http.MethodGet, path, nil)
	assert.Equal(t, gen.Cycling, decodeWorkout(t, rec.Body.Bytes()).Kind)

	// Switching with the required field succeeds and drops elevationGain.
	rec = serve(api, http.MethodPatch, path, jsonBody(t, map[string]any{"kind": "running", "cadence": 170}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeWorkout(t, rec.Body.Bytes())
	assert.Equal(t, gen.Running, updated.Kind)
	assert.Nil(t, updated.ElevationGain)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, created.Distance, updated.Distance)

	rec = serve(api, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNotFound, serve(api, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(api, http.MethodDelete, path, nil).Code)
}

func TestAPI_ListReturnsEverything(t *testing.T) {
	api := newAPI()

	rec := serve(api, http.MethodGet, "/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for i := 0; i < 3; i++ {
		rec = serve(api, http.MethodPost, "/workouts", jsonBody(t, runningBody()))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = serve(api, http.MethodGet, "/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []gen.Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)
}
