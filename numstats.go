// Package numstats records named series of measurements, such as network
// latency samples, and summarizes them with the descriptive statistics of
// pkg/stats: min, max, average, sample variance and standard deviation.
//
// A Monitor stores samples in a backend (in memory or Redis) and computes every
// summary from a snapshot of the series, so the statistics of one summary always
// describe the same samples. NaN samples are recorded as missing measurements and
// skipped by the statistics.
//
// Example:
//
//	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
//	if err != nil {
//		return err
//	}
//	defer monitor.Stop(ctx)
//
//	_ = monitor.Record(ctx, "rtt", 1, math.NaN(), 2, 4)
//	summary, _ := monitor.Summarize(ctx, "rtt")
//	fmt.Print(summary)
package numstats

import (
	"context"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/internal/constants"
	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/backend"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Monitor records sample series in a backend and summarizes them.
// It implements Service.
type Monitor[F stats.Float] struct {
	backend        backend.IBackend[F]
	mgmtHTTP       *ManagementHTTPServer
	summaryWorkers int // series summarized concurrently by SummarizeMany
}

// New creates a Monitor with the backend selected by cfg.BackendType in manager.
// When the management HTTP server is enabled it is started before New returns.
func New[F stats.Float](ctx context.Context, manager *BackendManager[F], cfg *Config[F]) (*Monitor[F], error) {
	if manager == nil {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "manager")
	}

	if cfg == nil {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "config")
	}

	constructor, ok := manager.constructor(cfg.BackendType)
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrBackendNotFound, cfg.BackendType)
	}

	be, err := constructor.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewWithBackend(ctx, be, cfg.MonitorOptions...)
}

// NewWithBackend creates a Monitor around an existing backend.
func NewWithBackend[F stats.Float](ctx context.Context, be backend.IBackend[F], opts ...Option[F]) (*Monitor[F], error) {
	if be == nil {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "backend")
	}

	monitor := &Monitor[F]{backend: be, summaryWorkers: constants.DefaultSummaryWorkers}
	ApplyMonitorOptions(monitor, opts...)

	if monitor.mgmtHTTP != nil {
		err := monitor.mgmtHTTP.Start(ctx, monitor)
		if err != nil {
			return nil, err
		}
	}

	return monitor, nil
}

// NewInMemoryWithDefaults creates a Monitor backed by memory, retaining at most
// capacity samples per series (0 keeps every sample).
func NewInMemoryWithDefaults[F stats.Float](ctx context.Context, capacity int) (*Monitor[F], error) {
	cfg := NewConfig[F]("")
	cfg.InMemoryOptions = append(cfg.InMemoryOptions, backend.WithCapacity[backend.InMemory[F]](capacity))

	return New(ctx, NewBackendManager[F](), cfg)
}

// Record appends samples to the named series.
func (m *Monitor[F]) Record(ctx context.Context, series string, values ...F) error {
	err := ctx.Err()
	if err != nil {
		return ewrap.Wrap(sentinel.ErrTimeoutOrCanceled, err.Error())
	}

	return m.backend.Append(ctx, series, values...)
}

// Samples returns a copy of the samples recorded for the series.
func (m *Monitor[F]) Samples(ctx context.Context, series string) ([]F, error) {
	return m.backend.Samples(ctx, series)
}

// Summarize computes every statistic of the series from one snapshot of its samples.
// A series whose samples are all NaN yields a record of NaN values, not an error.
func (m *Monitor[F]) Summarize(ctx context.Context, series string) (stats.All[F], error) {
	values, err := m.backend.Samples(ctx, series)
	if err != nil {
		return stats.NewAll[F](nil), err
	}

	return stats.NewAll(values), nil
}

// SummarizeMany summarizes each named series, up to summaryWorkers at a time.
// Series that cannot be read are reported in failed and left out of result.
func (m *Monitor[F]) SummarizeMany(ctx context.Context, series ...string) (map[string]stats.All[F], map[string]error) {
	result := make(map[string]stats.All[F], len(series))
	failed := make(map[string]error)

	var mu sync.Mutex

	summarize := func(name string) {
		var (
			all stats.All[F]
			err = ctx.Err()
		)

		if err != nil {
			err = ewrap.Wrap(sentinel.ErrTimeoutOrCanceled, err.Error())
		} else {
			all, err = m.Summarize(ctx, name)
		}

		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			failed[name] = err

			return
		}

		result[name] = all
	}

	workers := min(m.summaryWorkers, len(series))
	if workers <= 1 {
		for _, name := range series {
			summarize(name)
		}

		return result, failed
	}

	pool := newWorkerPool(workers)
	for _, name := range series {
		pool.enqueue(func() { summarize(name) })
	}

	pool.wait()

	return result, failed
}

// List returns the sorted names of all series.
func (m *Monitor[F]) List(ctx context.Context) ([]string, error) {
	return m.backend.List(ctx)
}

// Count returns the number of series.
func (m *Monitor[F]) Count(ctx context.Context) int {
	return m.backend.Count(ctx)
}

// Remove deletes the named series.
func (m *Monitor[F]) Remove(ctx context.Context, series ...string) error {
	return m.backend.Remove(ctx, series...)
}

// Clear removes every series.
func (m *Monitor[F]) Clear(ctx context.Context) error {
	return m.backend.Clear(ctx)
}

// Capacity returns the maximum number of samples retained per series (0 means unlimited).
func (m *Monitor[F]) Capacity() int {
	return m.backend.Capacity()
}

// ManagementHTTPAddress returns the bound address of the management server, or "" when disabled.
func (m *Monitor[F]) ManagementHTTPAddress() string {
	if m.mgmtHTTP == nil {
		return ""
	}

	return m.mgmtHTTP.Address()
}

// Stop shuts down the management HTTP server, if any.
func (m *Monitor[F]) Stop(ctx context.Context) error {
	if m.mgmtHTTP == nil {
		return nil
	}

	return m.mgmtHTTP.Shutdown(ctx)
}
