// Package repo contains all storage access logic for the workout API.
// Each store has its own file implementing WorkoutRepo.
// No business logic lives here, only queries and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/workout-map/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WorkoutRepo defines the persistence operations for workouts.
// The service layer depends on this interface, not on a concrete store.
// Implementations store what they are given; validation happens in the service.
type WorkoutRepo interface {
	// Create inserts a new workout and returns the persisted record with a
	// store-generated ID and updated_at populated. CreatedAt is kept as given.
	Create(ctx context.Context, w domain.Workout) (domain.Workout, error)

	// GetByID retrieves a single workout.
	// Returns domain.ErrNotFound if no workout with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Workout, error)

	// List returns all workouts ordered by created_at, then id.
	List(ctx context.Context) ([]domain.Workout, error)

	// Update overwrites every mutable field of an existing workout and returns
	// the stored record. Returns domain.ErrNotFound if the ID does not exist.
	Update(ctx context.Context, w domain.Workout) (domain.Workout, error)

	// Delete removes a workout by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgWorkoutRepo is the Postgres implementation of WorkoutRepo.
type pgWorkoutRepo struct {
	db db
}

// NewWorkoutRepo constructs a WorkoutRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewWorkoutRepo(db db) WorkoutRepo {
	return &pgWorkoutRepo{db: db}
}

const workoutColumns = `id, kind, distance, duration, latitude, longitude,
		       cadence, elevation_gain, custom_metrics, created_at, updated_at`

// Create inserts a new workout row and returns the full persisted record.
func (r *pgWorkoutRepo) Create(ctx context.Context, w domain.Workout) (domain.Workout, error) {
	const q = `
		INSERT INTO workouts (kind, distance, duration, latitude, longitude,
		                      cadence, elevation_gain, custom_metrics, created_at)
		VALUES (@kind, @distance, @duration, @latitude, @longitude,
		        @cadence, @elevation_gain, @custom_metrics, @created_at)
		RETURNING ` + workoutColumns

	args, err := workoutArgs(w)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("repo.WorkoutRepo.Create: %w", err)
	}
	args["created_at"] = w.CreatedAt

	result, err := scanWorkout(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Workout{}, fmt.Errorf("repo.WorkoutRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a workout by primary key.
func (r *pgWorkoutRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Workout, error) {
	const q = `SELECT ` + workoutColumns + ` FROM workouts WHERE id = @id`

	result, err := scanWorkout(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Workout{}, fmt.Errorf("repo.WorkoutRepo.GetByID %s: %w", id, err)
	}
	return result, nil
}

// List returns all workouts, oldest first. The id tiebreak keeps the order
// stable for rows sharing a created_at.
func (r *pgWorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	const q = `SELECT ` + workoutColumns + ` FROM workouts ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.WorkoutRepo.List: %w", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WorkoutRepo.List: scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WorkoutRepo.List: rows: %w", err)
	}

	return workouts, nil
}

// Update overwrites the mutable fields of a workout and returns the updated record.
func (r *pgWorkoutRepo) Update(ctx context.Context, w domain.Workout) (domain.Workout, error) {
	const q = `
		UPDATE workouts
		SET kind           = @kind,
		    distance       = @distance,
		    duration       = @duration,
		    latitude       = @latitude,
		    longitude      = @longitude,
		    cadence        = @cadence,
		    elevation_gain = @elevation_gain,
		    custom_metrics = @custom_metrics,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + workoutColumns

	args, err := workoutArgs(w)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("repo.WorkoutRepo.Update: %w", err)
	}
	args["id"] = w.ID

	result, err := scanWorkout(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Workout{}, fmt.Errorf("repo.WorkoutRepo.Update %s: %w", w.ID, err)
	}
	return result, nil
}

// Delete removes a workout by primary key.
func (r *pgWorkoutRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM workouts WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.WorkoutRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.WorkoutRepo.Delete %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// workoutArgs maps the mutable workout fields to named query arguments.
// Nil Cadence / ElevationGain pointers become NULL.
func workoutArgs(w domain.Workout) (pgx.NamedArgs, error) {
	if w.Coordinates == nil {
		return nil, errors.New("workout has no coordinates")
	}
	metrics := w.CustomMetrics
	if metrics == nil {
		metrics = map[string]any{}
	}
	return pgx.NamedArgs{
		"kind":           string(w.Kind),
		"distance":       w.Distance,
		"duration":       w.Duration,
		"latitude":       w.Coordinates.Latitude,
		"longitude":      w.Coordinates.Longitude,
		"cadence":        w.Cadence,
		"elevation_gain": w.ElevationGain,
		"custom_metrics": metrics,
	}, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanWorkout to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanWorkout maps a single database row into a domain.Workout.
func scanWorkout(s scanner) (domain.Workout, error) {
	var (
		w         domain.Workout
		id        pgtype.UUID
		kind      string
		coords    domain.Coordinates
		cadence   pgtype.Float8
		elevation pgtype.Float8
		metrics   map[string]any
	)

	err := s.Scan(&id, &kind, &w.Distance, &w.Duration, &coords.Latitude, &coords.Longitude,
		&cadence, &elevation, &metrics, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Workout{}, domain.ErrNotFound
		}
		return domain.Workout{}, err
	}

	w.ID = uuid.UUID(id.Bytes)
	w.Kind = domain.Kind(kind)
	w.Coordinates = &coords
	if cadence.Valid {
		v := cadence.Float64
		w.Cadence = &v
	}
	if elevation.Valid {
		v := elevation.Float64
		w.ElevationGain = &v
	}
	if metrics == nil {
		metrics = map[string]any{}
	}
	w.CustomMetrics = metrics
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()

	return w, nil
}
