// Package sentinel provides standardized error definitions for the numstats system.
// The statistics core never fails (undefined results are signaled with NaN); these
// errors belong to the outer layers: sample series storage, encoding and the
// management HTTP server.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrInvalidSeries is returned when a series name is empty or only whitespace.
	ErrInvalidSeries = ewrap.New("invalid series name")

	// ErrSeriesNotFound is returned when a series holds no recorded samples.
	ErrSeriesNotFound = ewrap.New("series not found")

	// ErrInvalidSamples is returned when a samples payload cannot be decoded.
	ErrInvalidSamples = ewrap.New("invalid samples payload")

	// ErrNilClient is returned when a nil client is passed to a backend.
	ErrNilClient = ewrap.New("nil client")

	// ErrInvalidCapacity is returned when a negative per-series capacity is configured.
	ErrInvalidCapacity = ewrap.New("capacity cannot be negative")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrBackendNotFound is returned when a backend is not found.
	ErrBackendNotFound = ewrap.New("backend not found")

	// ErrTimeoutOrCanceled is returned when a timeout or cancellation occurs.
	ErrTimeoutOrCanceled = ewrap.New("the operation timed out or was canceled")

	// ErrMgmtHTTPShutdownTimeout is returned when the management HTTP server fails to shutdown before context deadline.
	ErrMgmtHTTPShutdownTimeout = ewrap.New("management http shutdown timeout")
)
