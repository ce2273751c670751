package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/excelsior/engine/internal/engine"
	"github.com/excelsior/engine/internal/run"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError logs err with request context and writes the JSON error
// response that matches its kind.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	respondErrorJSON(w, status, code, err.Error())
}

// classifyError maps an error to an HTTP status and a machine-readable code.
func classifyError(err error) (status int, code string) {
	var inputErr *engine.InputError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, run.ErrUnknownProfile):
		return http.StatusNotFound, "unknown_profile"
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, "invalid_input"
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, "file_too_large"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// respondJSON encodes v as JSON. Encoding errors are logged since headers
// are already sent.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
