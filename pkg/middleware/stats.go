package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Recorder receives the duration samples of the StatsMiddleware.
// A float64 numstats.Service satisfies it, so a monitor can time itself.
type Recorder interface {
	Record(ctx context.Context, series string, values ...float64) error
}

// StatsMiddleware records the duration of every call, in milliseconds, into the
// series "<prefix>.<method>.ms" of a Recorder.
type StatsMiddleware[F stats.Float] struct {
	next     numstats.Service[F]
	recorder Recorder
	prefix   string
}

// NewStatsMiddleware returns a new StatsMiddleware. An empty prefix defaults to "numstats".
func NewStatsMiddleware[F stats.Float](next numstats.Service[F], recorder Recorder, prefix string) numstats.Service[F] {
	if prefix == "" {
		prefix = "numstats"
	}

	return &StatsMiddleware[F]{next: next, recorder: recorder, prefix: prefix}
}

// Record times the call.
func (mw StatsMiddleware[F]) Record(ctx context.Context, series string, values ...F) error {
	defer mw.observe(ctx, "record", time.Now())

	return mw.next.Record(ctx, series, values...)
}

// Samples times the call.
func (mw StatsMiddleware[F]) Samples(ctx context.Context, series string) ([]F, error) {
	defer mw.observe(ctx, "samples", time.Now())

	return mw.next.Samples(ctx, series)
}

// Summarize times the call.
func (mw StatsMiddleware[F]) Summarize(ctx context.Context, series string) (stats.All[F], error) {
	defer mw.observe(ctx, "summarize", time.Now())

	return mw.next.Summarize(ctx, series)
}

// SummarizeMany times the call.
func (mw StatsMiddleware[F]) SummarizeMany(ctx context.Context, series ...string) (map[string]stats.All[F], map[string]error) {
	defer mw.observe(ctx, "summarize_many", time.Now())

	return mw.next.SummarizeMany(ctx, series...)
}

// List times the call.
func (mw StatsMiddleware[F]) List(ctx context.Context) ([]string, error) {
	defer mw.observe(ctx, "list", time.Now())

	return mw.next.List(ctx)
}

// Count forwards to the next service.
func (mw StatsMiddleware[F]) Count(ctx context.Context) int { return mw.next.Count(ctx) }

// Remove times the call.
func (mw StatsMiddleware[F]) Remove(ctx context.Context, series ...string) error {
	defer mw.observe(ctx, "remove", time.Now())

	return mw.next.Remove(ctx, series...)
}

// Clear times the call.
func (mw StatsMiddleware[F]) Clear(ctx context.Context) error {
	defer mw.observe(ctx, "clear", time.Now())

	return mw.next.Clear(ctx)
}

// Stop forwards to the next service.
func (mw StatsMiddleware[F]) Stop(ctx context.Context) error { return mw.next.Stop(ctx) }

// observe records the elapsed time since start. Recording errors are ignored.
func (mw StatsMiddleware[F]) observe(ctx context.Context, method string, start time.Time) {
	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	_ = mw.recorder.Record(ctx, mw.prefix+"."+method+".ms", elapsed)
}
