// Package client talks to the workout map API and keeps the caller's local
// copy of the workout collection in step with it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/handler/gen"
)

// Client is a typed HTTP client for the workout endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TransportError reports a request that produced no usable response:
// the connection failed or the response body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("client: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response. Message and Field come from the error body.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("client: status %d: %s (field %s)", e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("client: status %d: %s", e.Status, e.Message)
}

// Is lets callers test API errors against the domain sentinels:
// a 404 matches domain.ErrNotFound and a 400 naming a field matches domain.ErrValidation.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrValidation:
		return e.Status == http.StatusBadRequest && e.Field != ""
	}
	return false
}

// ListWorkouts fetches every stored workout.
func (c *Client) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	var out []gen.Workout
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, &out); err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, len(out))
	for i, w := range out {
		workouts[i] = fromWire(w)
	}
	return workouts, nil
}

// GetWorkout fetches one workout.
func (c *Client) GetWorkout(ctx context.Context, id uuid.UUID) (domain.Workout, error) {
	var out gen.Workout
	if err := c.do(ctx, http.MethodGet, "/workouts/"+id.String(), nil, &out); err != nil {
		return domain.Workout{}, err
	}
	return fromWire(out), nil
}

// CreateWorkout submits f and returns the workout the server stored.
func (c *Client) CreateWorkout(ctx context.Context, f domain.Fields) (domain.Workout, error) {
	var out gen.Workout
	if err := c.do(ctx, http.MethodPost, "/workouts", fieldsToWire(f), &out); err != nil {
		return domain.Workout{}, err
	}
	return fromWire(out), nil
}

// UpdateWorkout sends a partial update and returns the merged workout.
func (c *Client) UpdateWorkout(ctx context.Context, id uuid.UUID, p domain.Patch) (domain.Workout, error) {
	var out gen.Workout
	if err := c.do(ctx, http.MethodPatch, "/workouts/"+id.String(), patchToWire(p), &out); err != nil {
		return domain.Workout{}, err
	}
	return fromWire(out), nil
}

// DeleteWorkout removes a workout.
func (c *Client) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	var out gen.DeleteResponse
	return c.do(ctx, http.MethodDelete, "/workouts/"+id.String(), nil, &out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: %s: encode body: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeAPIError builds an APIError from an error response. Bodies that are
// not the API's JSON error shape fall back to the status text.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body gen.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		if body.Field != nil {
			apiErr.Field = *body.Field
		}
	}
	return apiErr
}

// --- wire mapping -----------------------------------------------------------

func fieldsToWire(f domain.Fields) gen.CreateWorkoutRequest {
	req := gen.CreateWorkoutRequest{
		Distance:      &f.Distance,
		Duration:      &f.Duration,
		Cadence:       f.Cadence,
		ElevationGain: f.ElevationGain,
		CreatedAt:     f.CreatedAt,
		Coordinates:   coordinatesToWire(f.Coordinates),
	}
	if f.Kind != "" {
		k := string(f.Kind)
		req.Kind = &k
	}
	if f.CustomMetrics != nil {
		m := f.CustomMetrics
		req.CustomMetrics = &m
	}
	return req
}

func patchToWire(p domain.Patch) gen.UpdateWorkoutRequest {
	req := gen.UpdateWorkoutRequest{
		Distance:      p.Distance,
		Duration:      p.Duration,
		Cadence:       p.Cadence,
		ElevationGain: p.ElevationGain,
		Coordinates:   coordinatesToWire(p.Coordinates),
	}
	if p.Kind != nil {
		k := string(*p.Kind)
		req.Kind = &k
	}
	if p.CustomMetrics != nil {
		m := p.CustomMetrics
		req.CustomMetrics = &m
	}
	return req
}

func coordinatesToWire(c *domain.Coordinates) *gen.CoordinatesInput {
	if c == nil {
		return nil
	}
	lat, lng := c.Latitude, c.Longitude
	return &gen.CoordinatesInput{Latitude: &lat, Longitude: &lng}
}

// fromWire converts a response document. The server has already validated
// it, so nothing is re-checked here; a document without coordinates is kept
// as is and simply cannot be placed on a map.
func fromWire(w gen.Workout) domain.Workout {
	out := domain.Workout{
		ID:            w.Id,
		Kind:          domain.Kind(w.Kind),
		Distance:      w.Distance,
		Duration:      w.Duration,
		Cadence:       w.Cadence,
		ElevationGain: w.ElevationGain,
		CustomMetrics: w.CustomMetrics,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	if w.Coordinates != nil {
		out.Coordinates = &domain.Coordinates{Latitude: w.Coordinates.Latitude, Longitude: w.Coordinates.Longitude}
	}
	if out.CustomMetrics == nil {
		out.CustomMetrics = map[string]any{}
	}
	return out
}
