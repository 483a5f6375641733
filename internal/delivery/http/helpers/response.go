package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventsmanager/internal/domain"
)

// ErrorResponse is the body of every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorData    any    `json:"errorData,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes an ErrorResponse. data is omitted when nil.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJSON(w, statusCode, ErrorResponse{ErrorMessage: message, ErrorData: data})
}

// WriteServiceError maps a service error to its HTTP status and writes it.
// Unexpected errors are logged.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		notFoundErr   *domain.NotFoundError
		upstreamErr   *domain.UpstreamServiceError
	)
	switch {
	case errors.As(err, &validationErr):
		WriteJSONError(w, http.StatusBadRequest, validationErr.Message, validationErr.Fields)
	case errors.As(err, &conflictErr):
		WriteJSONError(w, http.StatusBadRequest, conflictErr.Message, nil)
	case errors.As(err, &notFoundErr):
		WriteJSONError(w, http.StatusNotFound, notFoundErr.Message, nil)
	case errors.As(err, &upstreamErr):
		logger.ErrorContext(r.Context(), "upstream service failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, upstreamErr.Message, upstreamErr.Payload)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
