package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// NewErrorResponse picks the status and body for err. Errors outside the
// catalog collapse to a bare InternalError.
func NewErrorResponse(err error) (int, ErrorResponse) {
	cerr := domain.ErrInternalError
	_ = errors.As(err, &cerr)

	body := ErrorResponse{Code: cerr.Code, Message: cerr.Message, AdditionalInfo: cerr.AdditionalInfo}
	switch {
	case errors.Is(cerr, domain.ErrValidation):
		return http.StatusBadRequest, body
	case errors.Is(cerr, domain.ErrNotFound):
		return http.StatusNotFound, body
	default:
		return http.StatusInternalServerError, body
	}
}

// WriteErrorResponse renders err. Server-side failures are logged with the
// full error chain first, since the body no longer carries it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, body := NewErrorResponse(err)
	logger := logging.FromContext(r.Context())

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.ErrorContext(r.Context(), "encoding error body", slog.Any("error", err))
	}
}
