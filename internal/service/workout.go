// Package service contains the business logic for the workout API.
// Services validate inputs through the domain constructors, enforce the
// update rules, and orchestrate repo calls. No SQL lives here.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/observability"
	"github.com/pkordes/workout-map/internal/repo"
)

// WorkoutService is the persistence gateway for workouts: every write path
// goes through domain validation before the repo sees it.
type WorkoutService struct {
	repo repo.WorkoutRepo
}

// NewWorkoutService constructs a WorkoutService backed by the provided WorkoutRepo.
func NewWorkoutService(r repo.WorkoutRepo) *WorkoutService {
	return &WorkoutService{repo: r}
}

// Create validates the raw fields and persists the resulting workout.
// Returns domain.ErrValidation (as *domain.ValidationError) for invalid input;
// nothing is written in that case.
func (s *WorkoutService) Create(ctx context.Context, f domain.Fields) (domain.Workout, error) {
	w, err := domain.NewWorkout(f)
	if err != nil {
		recordRejection("create", err)
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.Create: %w", err)
	}
	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.Create: %w", err)
	}
	observability.RecordWrite("create", string(created.Kind))
	return created, nil
}

// GetByID returns a single workout.
// Returns domain.ErrNotFound if it does not exist.
func (s *WorkoutService) GetByID(ctx context.Context, id uuid.UUID) (domain.Workout, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.GetByID: %w", err)
	}
	return w, nil
}

// List returns all workouts in the store's stable order.
// Always returns a non-nil slice so callers can safely range over it
// and handlers encode [] rather than null.
func (s *WorkoutService) List(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WorkoutService.List: %w", err)
	}
	if workouts == nil {
		return []domain.Workout{}, nil
	}
	return workouts, nil
}

// Update overlays patch on the stored workout and re-validates the merged
// document before writing it back. A patch that would leave the workout
// violating the kind rules (e.g. switching to running without a cadence) is
// rejected with domain.ErrValidation. Returns domain.ErrNotFound for unknown ids.
func (s *WorkoutService) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Workout, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
	}

	merged, err := existing.Apply(patch)
	if err != nil {
		recordRejection("update", err)
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
	}
	observability.RecordWrite("update", string(updated.Kind))
	return updated, nil
}

// Delete removes a workout by ID.
// Returns domain.ErrNotFound if it does not exist.
func (s *WorkoutService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.WorkoutService.Delete: %w", err)
	}
	observability.RecordWrite("delete", "")
	return nil
}

func recordRejection(op string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		observability.RecordValidationFailure(op, verr.Field)
	}
}
