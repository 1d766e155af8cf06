package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-map/internal/domain"
)

// memoryWorkoutRepo keeps workouts in process memory. It satisfies the same
// contract as the Postgres repo and backs end-to-end tests and local runs
// that have no database.
type memoryWorkoutRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]domain.Workout
	order []uuid.UUID
	now   func() time.Time
	newID func() uuid.UUID
}

// NewMemoryWorkoutRepo constructs an empty in-memory WorkoutRepo.
func NewMemoryWorkoutRepo() WorkoutRepo {
	return &memoryWorkoutRepo{
		byID:  make(map[uuid.UUID]domain.Workout),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
}

func (r *memoryWorkoutRepo) Create(_ context.Context, w domain.Workout) (domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ID = r.newID()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = r.now()
	}
	w.UpdatedAt = r.now()
	w = clone(w)

	r.byID[w.ID] = w
	r.order = append(r.order, w.ID)
	return clone(w), nil
}

func (r *memoryWorkoutRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byID[id]
	if !ok {
		return domain.Workout{}, fmt.Errorf("repo.memoryWorkoutRepo.GetByID %s: %w", id, domain.ErrNotFound)
	}
	return clone(w), nil
}

// List returns workouts in insertion order.
func (r *memoryWorkoutRepo) List(_ context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workout, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

func (r *memoryWorkoutRepo) Update(_ context.Context, w domain.Workout) (domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[w.ID]
	if !ok {
		return domain.Workout{}, fmt.Errorf("repo.memoryWorkoutRepo.Update %s: %w", w.ID, domain.ErrNotFound)
	}
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = r.now()
	r.byID[w.ID] = clone(w)
	return clone(w), nil
}

func (r *memoryWorkoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("repo.memoryWorkoutRepo.Delete %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clone copies the pointer and map fields so callers never share state with the store.
func clone(w domain.Workout) domain.Workout {
	if w.Coordinates != nil {
		c := *w.Coordinates
		w.Coordinates = &c
	}
	if w.Cadence != nil {
		v := *w.Cadence
		w.Cadence = &v
	}
	if w.ElevationGain != nil {
		v := *w.ElevationGain
		w.ElevationGain = &v
	}
	if w.CustomMetrics != nil {
		w.CustomMetrics = cloneMetrics(w.CustomMetrics)
	} else {
		w.CustomMetrics = map[string]any{}
	}
	return w
}

// cloneMetrics copies m and every nested map or slice decoded from JSON.
// Scalars are immutable and shared as-is.
func cloneMetrics(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMetrics(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}
