package backend

import (
	"context"
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// InMemory is a backend that keeps sample series in memory, in a sharded concurrent map.
type InMemory[F stats.Float] struct {
	series     seriesMap[F] // sharded series storage
	capacity   int          // maximum number of samples retained per series, 0 keeps everything
	shardCount int          // number of shards of the series map
}

// NewInMemory creates a new in-memory backend with the given options.
func NewInMemory[F stats.Float](opts ...Option[InMemory[F]]) (*InMemory[F], error) {
	backendInstance := &InMemory[F]{
		shardCount: DefaultShardCount,
	}
	// Apply the backend options
	ApplyOptions(backendInstance, opts...)
	// Check if the `capacity` is valid
	if backendInstance.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	backendInstance.series = newSeriesMap[F](backendInstance.shardCount)

	return backendInstance, nil
}

// Capacity returns the maximum number of samples retained per series.
func (inm *InMemory[F]) Capacity() int {
	return inm.capacity
}

// Append adds values to the end of the named series.
func (inm *InMemory[F]) Append(_ context.Context, series string, values ...F) error {
	err := ValidSeries(series)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	inm.series.appendTrim(series, inm.capacity, values)

	return nil
}

// Samples returns a copy of the samples of the named series.
func (inm *InMemory[F]) Samples(_ context.Context, series string) ([]F, error) {
	err := ValidSeries(series)
	if err != nil {
		return nil, err
	}

	values, ok := inm.series.snapshot(series)
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrSeriesNotFound, series)
	}

	return values, nil
}

// List returns the sorted names of all series.
func (inm *InMemory[F]) List(_ context.Context) ([]string, error) {
	names := inm.series.keys()
	slices.Sort(names)

	return names, nil
}

// Count returns the number of series.
func (inm *InMemory[F]) Count(_ context.Context) int {
	return inm.series.count()
}

// Remove deletes the named series.
func (inm *InMemory[F]) Remove(_ context.Context, series ...string) error {
	for _, name := range series {
		inm.series.remove(name)
	}

	return nil
}

// Clear removes every series.
func (inm *InMemory[F]) Clear(_ context.Context) error {
	inm.series.clear()

	return nil
}
