package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/workout-map/internal/domain"
	"github.com/pkordes/workout-map/internal/handler/gen"
)

// Messages shown to callers when the real cause must stay server-side.
const (
	msgBadRequest = "invalid request"
	msgNotFound   = "workout not found"
	msgInternal   = "internal server error"
	msgTooLarge   = "request body too large"
)

// errorBody returns an ErrorResponse carrying only a message.
func errorBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: message}
}

// validationBody returns an ErrorResponse naming the offending field.
// Errors that are not a *domain.ValidationError get the generic message.
func validationBody(err error) gen.ErrorResponse {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return errorBody(msgBadRequest)
	}
	field := verr.Field
	return gen.ErrorResponse{Error: verr.Error(), Field: &field}
}

// requestError answers requests rejected before reaching a handler:
// undecodable JSON bodies and malformed path parameters. A body cut off by
// http.MaxBytesReader gets 413.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "error", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(msgTooLarge))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody(msgBadRequest))
}

// responseError answers errors a handler returned instead of a typed response.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody(msgInternal))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
