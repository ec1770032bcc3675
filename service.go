package numstats

import (
	"context"

	"github.com/hyp3rd/numstats/pkg/stats"
)

// Service is the service interface of the Monitor.
// It enables middleware to be added to the service.
type Service[F stats.Float] interface {
	// Record appends samples to the named series. NaN samples are kept as missing measurements.
	Record(ctx context.Context, series string, values ...F) error
	// Samples returns a copy of the samples recorded for the series.
	Samples(ctx context.Context, series string) ([]F, error)
	// Summarize computes every statistic of the series from one snapshot of its samples.
	Summarize(ctx context.Context, series string) (stats.All[F], error)
	// SummarizeMany summarizes several series; failures are reported per series.
	SummarizeMany(ctx context.Context, series ...string) (result map[string]stats.All[F], failed map[string]error)
	// List returns the sorted names of all series.
	List(ctx context.Context) ([]string, error)
	// Count returns the number of series.
	Count(ctx context.Context) int
	// Remove deletes the named series.
	Remove(ctx context.Context, series ...string) error
	// Clear removes every series.
	Clear(ctx context.Context) error
	// Stop releases the resources held by the monitor.
	Stop(ctx context.Context) error
}

// Middleware describes a service middleware.
type Middleware[F stats.Float] func(Service[F]) Service[F]

// ApplyMiddleware applies middlewares to a service, in order.
func ApplyMiddleware[F stats.Float](svc Service[F], mw ...Middleware[F]) Service[F] {
	for _, m := range mw {
		svc = m(svc)
	}

	return svc
}
