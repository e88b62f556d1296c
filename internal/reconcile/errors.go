package reconcile

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateZRead is returned when a Z-Read already exists for the store and day.
	ErrDuplicateZRead = errors.New("z-read already generated for this store and date")
	// ErrNoInitialCash is returned when no opening float was logged for the window.
	ErrNoInitialCash = errors.New("no EOD data for this date yet: initial cash has not been logged")
	// ErrNoZRead is returned when a Z-Read snapshot is requested for a day that was never closed.
	ErrNoZRead = errors.New("no z-read snapshot for this date")
	// ErrOriginNotFound marks a refund or return whose original sale cannot be resolved.
	ErrOriginNotFound = errors.New("original transaction not found")
)

// InfraError wraps a ledger query or write failure.
type InfraError struct {
	Op  string
	Err error
}

func (e *InfraError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *InfraError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the whole computation.
// Only a caller-side cancellation is final.
func (e *InfraError) Retryable() bool {
	return !errors.Is(e.Err, context.Canceled)
}

func infra(op string, err error) error {
	var ie *InfraError
	if errors.As(err, &ie) {
		return err
	}

	return &InfraError{Op: op, Err: err}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
