package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-map/internal/middleware"
)

// newLoggedRouter returns a chi router with RequestID and the slog middleware
// writing JSON lines to buf.
func newLoggedRouter(buf *bytes.Buffer) *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewSlogLogger(logger))
	return r
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestSlogLogger_logsRouteAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	r.Get("/workouts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/workouts/9b2e6c1d-0000-4000-8000-000000000001", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	line := decodeLine(t, &buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/workouts/9b2e6c1d-0000-4000-8000-000000000001", line["path"])
	assert.Equal(t, "/workouts/{id}", line["route"])
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, len(`{"id":"x"}`), line["bytes"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.Contains(t, line, "duration_ms")
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusCreated, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			var buf bytes.Buffer
			r := newLoggedRouter(&buf)
			r.Post("/workouts", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/workouts", nil))

			line := decodeLine(t, &buf)
			assert.Equal(t, tc.level, line["level"])
			assert.EqualValues(t, tc.status, line["status"])
		})
	}
}

func TestSlogLogger_unmatchedRoute(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	// chi only builds its middleware chain once a route exists; without one a
	// miss goes straight to NotFound and nothing is logged.
	r.Get("/workouts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	line := decodeLine(t, &buf)
	assert.Equal(t, "unmatched", line["route"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
}
