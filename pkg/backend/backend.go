// Package backend stores named sample series for the statistics monitor.
//
// A series is an append-only sample sequence of one floating-point width. NaN
// samples are stored as recorded: they stand for missing measurements and are
// filtered when statistics are computed, never when samples are stored.
//
// Two implementations are provided:
//   - InMemory keeps series in a sharded map in application memory.
//   - Redis persists every series as a Redis list of serialized samples.
//
// Both honor a per-series capacity: once a series holds more samples than its
// capacity, the oldest samples are dropped. A capacity of zero keeps everything.
package backend

import (
	"context"
	"strings"

	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// IBackend defines the contract that every sample series backend implements.
//
// All methods accept a context.Context for cancellation and timeout control.
type IBackend[F stats.Float] interface {
	// Append adds values to the end of the named series, creating it if needed.
	Append(ctx context.Context, series string, values ...F) error
	// Samples returns a copy of the samples of the named series in recording order.
	// The caller owns the returned slice.
	Samples(ctx context.Context, series string) ([]F, error)
	// List returns the names of all series, sorted.
	List(ctx context.Context) ([]string, error)
	// Count returns the number of series.
	Count(ctx context.Context) int
	// Remove deletes the named series. Unknown names are ignored.
	Remove(ctx context.Context, series ...string) error
	// Clear removes every series.
	Clear(ctx context.Context) error
	// Capacity returns the maximum number of samples retained per series (0 means unlimited).
	Capacity() int
}

// ValidSeries returns ErrInvalidSeries when name is empty or only whitespace.
func ValidSeries(name string) error {
	if strings.TrimSpace(name) == "" {
		return sentinel.ErrInvalidSeries
	}

	return nil
}

// trim keeps the last capacity samples of values, reusing its backing array.
func trim[F stats.Float](values []F, capacity int) []F {
	if capacity <= 0 || len(values) <= capacity {
		return values
	}

	n := copy(values, values[len(values)-capacity:])

	return values[:n]
}
