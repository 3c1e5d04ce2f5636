package helpers

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

// DashboardError is the base wrapper for pipeline errors.
type DashboardError struct {
	Message string
	Cause   error
}

func (e *DashboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// FetchError: the provider was unreachable or rejected the query.
// Propagates to the caller uncaught; nothing is retried.
type FetchError struct{ DashboardError }

// MalformedColumnError: the provider returned an unexpected shape that
// the Normalizer could not collapse to scalar columns.
type MalformedColumnError struct{ DashboardError }

// -----------------------------------------------------------------------------

func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{DashboardError{Message: message, Cause: cause}}
}

func NewMalformedColumnError(message string, cause error) *MalformedColumnError {
	return &MalformedColumnError{DashboardError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Sentinels
// -----------------------------------------------------------------------------

// ErrEmptyData: valid query, zero rows. The chart renders a "no data"
// state; the metrics panel must not show zeros.
var ErrEmptyData = errors.New("empty data: provider returned zero rows")

// ErrZeroBaseline: the window's baseline close is zero, so the percent
// change is undefined.
var ErrZeroBaseline = errors.New("zero baseline price")

// -----------------------------------------------------------------------------

func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

func IsMalformedColumnError(err error) bool {
	var me *MalformedColumnError
	return errors.As(err, &me)
}
