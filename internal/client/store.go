package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/workout-map/internal/domain"
)

// ErrMissingID is returned by Store.Add for a workout the server never confirmed.
var ErrMissingID = errors.New("client: workout has no id")

// WorkoutAPI is the subset of Client the Store needs.
type WorkoutAPI interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	CreateWorkout(ctx context.Context, f domain.Fields) (domain.Workout, error)
	DeleteWorkout(ctx context.Context, id uuid.UUID) error
}

var _ WorkoutAPI = (*Client)(nil)

// Store is the local, authoritative collection of workouts known to the
// client, keyed by id and kept in insertion order. Only entities the server
// has confirmed are ever added.
type Store struct {
	api WorkoutAPI

	mu    sync.RWMutex
	byID  map[uuid.UUID]domain.Workout
	order []uuid.UUID
}

// NewStore constructs an empty Store backed by api.
func NewStore(api WorkoutAPI) *Store {
	return &Store{api: api, byID: make(map[uuid.UUID]domain.Workout)}
}

// LoadAll replaces the local collection with the server's. On failure the
// previous collection is left untouched.
func (s *Store) LoadAll(ctx context.Context) error {
	workouts, err := s.api.ListWorkouts(ctx)
	if err != nil {
		return fmt.Errorf("client.Store.LoadAll: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Workout, len(workouts))
	order := make([]uuid.UUID, 0, len(workouts))
	for _, w := range workouts {
		if w.ID == uuid.Nil {
			continue
		}
		if _, dup := byID[w.ID]; !dup {
			order = append(order, w.ID)
		}
		byID[w.ID] = w
	}

	s.mu.Lock()
	s.byID, s.order = byID, order
	s.mu.Unlock()
	return nil
}

// Create submits f and adds the confirmed workout. Nothing is inserted
// locally before the server answers, so a failed request leaves the store unchanged.
func (s *Store) Create(ctx context.Context, f domain.Fields) (domain.Workout, error) {
	created, err := s.api.CreateWorkout(ctx, f)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("client.Store.Create: %w", err)
	}
	w, err := s.Add(created, f)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("client.Store.Create: %w", err)
	}
	return w, nil
}

// Add records a workout the server confirmed. When the response carries no
// coordinates, the ones from submitted are kept so the workout can still be
// placed on the map; with coordinates in neither, the workout is rejected.
// Adding an id that is already present replaces it in place.
func (s *Store) Add(created domain.Workout, submitted domain.Fields) (domain.Workout, error) {
	if created.ID == uuid.Nil {
		return domain.Workout{}, ErrMissingID
	}
	if created.Coordinates == nil {
		if submitted.Coordinates == nil {
			return domain.Workout{}, &domain.ValidationError{Field: "coordinates", Reason: "missing from both the response and the submission"}
		}
		c := *submitted.Coordinates
		created.Coordinates = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[created.ID]; !ok {
		s.order = append(s.order, created.ID)
	}
	s.byID[created.ID] = created
	return created, nil
}

// Delete removes the workout on the server, then locally. A workout the
// server no longer has is dropped locally as well, and the NotFound error
// is still returned.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.api.DeleteWorkout(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("client.Store.Delete: %w", err)
	}

	s.mu.Lock()
	if _, ok := s.byID[id]; ok {
		delete(s.byID, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("client.Store.Delete: %w", err)
	}
	return nil
}

// Get returns the workout with the given id.
func (s *Store) Get(id uuid.UUID) (domain.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.byID[id]
	return w, ok
}

// All returns every workout in insertion order.
func (s *Store) All() []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workout, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of workouts held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
