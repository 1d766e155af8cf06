package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/workout-map/internal/middleware"
)

const mapOrigin = "http://localhost:5173"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_simpleRequests(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed origin", mapOrigin, mapOrigin},
		{"other origin", "http://evil.example.com", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{mapOrigin})(okHandler)
			req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSHandler_exposesRequestID(t *testing.T) {
	h := middleware.NewCORSHandler([]string{mapOrigin})(okHandler)
	req := httptest.NewRequest(http.MethodPost, "/workouts", nil)
	req.Header.Set("Origin", mapOrigin)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "X-Request-Id", rec.Header().Get("Access-Control-Expose-Headers"))
}

// Updates are sent as PATCH with a JSON body, so the browser always preflights them.
func TestCORSHandler_preflight(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		wantAllowed bool
	}{
		{"patch", http.MethodPatch, true},
		{"delete", http.MethodDelete, true},
		{"put", http.MethodPut, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{mapOrigin})(okHandler)
			req := httptest.NewRequest(http.MethodOptions, "/workouts/1", nil)
			req.Header.Set("Origin", mapOrigin)
			req.Header.Set("Access-Control-Request-Method", tc.method)
			// Browsers send request header names lowercased; rs/cors compares them that way.
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			if !tc.wantAllowed {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
				return
			}
			assert.Equal(t, mapOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.method, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "300", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}
