package handler

import (
	"context"
	"errors"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/handler/gen"
)

// ListWorkouts handles GET /workouts.
func (s *Server) ListWorkouts(ctx context.Context, _ gen.ListWorkoutsRequestObject) (gen.ListWorkoutsResponseObject, error) {
	workouts, err := s.workouts.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "list workouts", "error", err)
		return gen.ListWorkouts500JSONResponse{InternalErrorJSONResponse: gen.InternalErrorJSONResponse(errorBody(msgInternal))}, nil
	}

	data := make(gen.ListWorkouts200JSONResponse, len(workouts))
	for i, w := range workouts {
		data[i] = workoutToResponse(w)
	}
	return data, nil
}

// CreateWorkout handles POST /workouts.
// Failures other than validation still answer 400: the caller cannot tell a
// rejected document from one the store refused.
func (s *Server) CreateWorkout(ctx context.Context, req gen.CreateWorkoutRequestObject) (gen.CreateWorkoutResponseObject, error) {
	fields, err := requestToFields(req.Body)
	if err != nil {
		return gen.CreateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
	}

	created, err := s.workouts.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
		}
		s.log.ErrorContext(ctx, "create workout", "error", err)
		return gen.CreateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(msgBadRequest))}, nil
	}

	return gen.CreateWorkout201JSONResponse(workoutToResponse(created)), nil
}

// GetWorkout handles GET /workouts/{id}.
func (s *Server) GetWorkout(ctx context.Context, req gen.GetWorkoutRequestObject) (gen.GetWorkoutResponseObject, error) {
	w, err := s.workouts.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetWorkout404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody(msgNotFound))}, nil
		}
		s.log.ErrorContext(ctx, "get workout", "id", req.Id, "error", err)
		return gen.GetWorkout500JSONResponse{InternalErrorJSONResponse: gen.InternalErrorJSONResponse(errorBody(msgInternal))}, nil
	}

	return gen.GetWorkout200JSONResponse(workoutToResponse(w)), nil
}

// UpdateWorkout handles PATCH /workouts/{id}.
func (s *Server) UpdateWorkout(ctx context.Context, req gen.UpdateWorkoutRequestObject) (gen.UpdateWorkoutResponseObject, error) {
	patch, err := requestToPatch(req.Body)
	if err != nil {
		return gen.UpdateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
	}

	updated, err := s.workouts.Update(ctx, req.Id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateWorkout404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody(msgNotFound))}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
		}
		s.log.ErrorContext(ctx, "update workout", "id", req.Id, "error", err)
		return gen.UpdateWorkout400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(errorBody(msgBadRequest))}, nil
	}

	return gen.UpdateWorkout200JSONResponse(workoutToResponse(updated)), nil
}

// DeleteWorkout handles DELETE /workouts/{id}.
func (s *Server) DeleteWorkout(ctx context.Context, req gen.DeleteWorkoutRequestObject) (gen.DeleteWorkoutResponseObject, error) {
	if err := s.workouts.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteWorkout404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(errorBody(msgNotFound))}, nil
		}
		s.log.ErrorContext(ctx, "delete workout", "id", req.Id, "error", err)
		return gen.DeleteWorkout500JSONResponse{InternalErrorJSONResponse: gen.InternalErrorJSONResponse(errorBody(msgInternal))}, nil
	}

	return gen.DeleteWorkout200JSONResponse{Message: "Workout deleted successfully."}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToFields converts a CreateWorkoutRequest body into domain.Fields.
// Only the coordinates are checked here, because a partially supplied pair
// cannot be expressed in domain.Fields; everything else is left to
// domain.NewWorkout so the check order stays in one place.
func requestToFields(body *gen.CreateWorkoutRequest) (domain.Fields, error) {
	if body == nil {
		return domain.Fields{}, errors.New("request body is required")
	}
	coords, err := inputToCoordinates(body.Coordinates)
	if err != nil {
		return domain.Fields{}, err
	}
	if coords == nil {
		return domain.Fields{}, &domain.ValidationError{Field: "coordinates", Reason: "latitude and longitude are required"}
	}

	f := domain.Fields{
		Coordinates:   coords,
		Cadence:       body.Cadence,
		ElevationGain: body.ElevationGain,
		CreatedAt:     body.CreatedAt,
	}
	if body.Kind != nil {
		f.Kind = domain.Kind(*body.Kind)
	}
	if body.Distance != nil {
		f.Distance = *body.Distance
	}
	if body.Duration != nil {
		f.Duration = *body.Duration
	}
	if body.CustomMetrics != nil {
		f.CustomMetrics = *body.CustomMetrics
	}
	return f, nil
}

// requestToPatch converts an UpdateWorkoutRequest body into a domain.Patch.
func requestToPatch(body *gen.UpdateWorkoutRequest) (domain.Patch, error) {
	if body == nil {
		return domain.Patch{}, errors.New("request body is required")
	}
	coords, err := inputToCoordinates(body.Coordinates)
	if err != nil {
		return domain.Patch{}, err
	}

	p := domain.Patch{
		Distance:      body.Distance,
		Duration:      body.Duration,
		Coordinates:   coords,
		Cadence:       body.Cadence,
		ElevationGain: body.ElevationGain,
	}
	if body.Kind != nil {
		k := domain.Kind(*body.Kind)
		p.Kind = &k
	}
	if body.CustomMetrics != nil {
		p.CustomMetrics = *body.CustomMetrics
	}
	return p, nil
}

// inputToCoordinates returns nil when no coordinates object was sent and a
// ValidationError when only one component was.
func inputToCoordinates(in *gen.CoordinatesInput) (*domain.Coordinates, error) {
	if in == nil {
		return nil, nil
	}
	if in.Latitude == nil || in.Longitude == nil {
		return nil, &domain.ValidationError{Field: "coordinates", Reason: "latitude and longitude are required"}
	}
	return &domain.Coordinates{Latitude: *in.Latitude, Longitude: *in.Longitude}, nil
}

// workoutToResponse converts a domain.Workout into the generated gen.Workout type.
func workoutToResponse(w domain.Workout) gen.Workout {
	resp := gen.Workout{
		Id:            w.ID,
		Kind:          gen.WorkoutKind(w.Kind),
		Distance:      w.Distance,
		Duration:      w.Duration,
		Cadence:       w.Cadence,
		ElevationGain: w.ElevationGain,
		CustomMetrics: w.CustomMetrics,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
		Description:   w.Description(),
	}
	if resp.CustomMetrics == nil {
		resp.CustomMetrics = map[string]interface{}{}
	}
	if w.Coordinates != nil {
		resp.Coordinates = &gen.Coordinates{Latitude: w.Coordinates.Latitude, Longitude: w.Coordinates.Longitude}
	}
	return resp
}
