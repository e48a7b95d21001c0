package apperrors

import (
	"fmt"
	"time"
)

// ClosurePendingError is returned when the sequencing guard blocks a new
// payment. It carries the earliest calendar date still awaiting a closure so
// callers can drive the corrective action.
type ClosurePendingError struct {
	RequiredClosureDate time.Time
}

func (e *ClosurePendingError) Error() string {
	return fmt.Sprintf("%s: closure required for %s", ErrClosurePending, e.RequiredClosureDate.Format("2006-01-02"))
}

func (e *ClosurePendingError) Unwrap() error {
	return ErrClosurePending
}

// NewClosurePendingError creates a ClosurePendingError for the given date.
func NewClosurePendingError(date time.Time) *ClosurePendingError {
	return &ClosurePendingError{RequiredClosureDate: date}
}
