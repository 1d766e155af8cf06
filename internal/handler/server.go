// Package handler implements the HTTP handlers for the workout map API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/handler/gen"
)

// WorkoutServicer defines the business operations the workout handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type WorkoutServicer interface {
	Create(ctx context.Context, f domain.Fields) (domain.Workout, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Update(ctx context.Context, id uuid.UUID, p domain.Patch) (domain.Workout, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via Server.Routes.
type Server struct {
	workouts WorkoutServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(workouts WorkoutServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{workouts: workouts, log: log}
}

// GetHealth handles GET /healthz. It does not touch the store.
func (s *Server) GetHealth(context.Context, gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// Routes registers the generated API routes on r (a fresh chi router when r
// is nil) and returns it. Undecodable bodies and malformed path parameters
// are answered with a generic 400 JSON body; errors escaping a handler
// become a generic 500 and are logged.
func (s *Server) Routes(r chi.Router) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
}
