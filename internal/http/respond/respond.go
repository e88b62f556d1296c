// Package respond writes JSON bodies and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/backoffice/internal/cashlog"
	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

const retryMessage = "ledger temporarily unavailable, please retry"

type errorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with the status its kind maps to. Preconditions carry their own
// message; infrastructure failures are logged and replaced by a retry hint.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)

	msg := err.Error()

	switch status {
	case http.StatusServiceUnavailable:
		slog.Error("ledger unavailable", "error", err)
		msg = retryMessage
	case http.StatusInternalServerError:
		slog.Error("request failed", "error", err)
		msg = "internal error"
	}

	JSON(w, status, errorResponse{Error: msg})
}

// BadRequest writes a 400 with msg.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func Status(err error) int {
	var infraErr *reconcile.InfraError

	switch {
	case errors.Is(err, reconcile.ErrDuplicateZRead), errors.Is(err, cashlog.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, reconcile.ErrNoInitialCash):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reconcile.ErrNoZRead), errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cashlog.ErrInvalid):
		return http.StatusBadRequest
	case errors.As(err, &infraErr), errors.Is(err, cashlog.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
