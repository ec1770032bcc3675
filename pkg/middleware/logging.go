// Package middleware provides service middlewares for the numstats Monitor:
// call logging, self-timing into a sample series, and OpenTelemetry metrics and tracing.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// The standard library *log.Logger satisfies it, and so do the sugared loggers of zap and logrus.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware logs every call and the time it took.
type LoggingMiddleware[F stats.Float] struct {
	next   numstats.Service[F]
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware[F stats.Float](next numstats.Service[F], logger Logger) numstats.Service[F] {
	return &LoggingMiddleware[F]{next: next, logger: logger}
}

// Record logs the call and its duration.
func (mw LoggingMiddleware[F]) Record(ctx context.Context, series string, values ...F) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Record took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Record method called with series: %s samples: %d", series, len(values))

	return mw.next.Record(ctx, series, values...)
}

// Samples logs the call and its duration.
func (mw LoggingMiddleware[F]) Samples(ctx context.Context, series string) ([]F, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Samples took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Samples method called with series: %s", series)

	return mw.next.Samples(ctx, series)
}

// Summarize logs the call, its duration and whether the summary was defined.
func (mw LoggingMiddleware[F]) Summarize(ctx context.Context, series string) (stats.All[F], error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Summarize took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Summarize method called with series: %s", series)

	all, err := mw.next.Summarize(ctx, series)
	if err == nil && !all.Defined() {
		mw.logger.Printf("series %s has no valid samples, summary is undefined", series)
	}

	return all, err
}

// SummarizeMany logs the call and its duration.
func (mw LoggingMiddleware[F]) SummarizeMany(ctx context.Context, series ...string) (map[string]stats.All[F], map[string]error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method SummarizeMany took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("SummarizeMany method called with series: %s", series)

	return mw.next.SummarizeMany(ctx, series...)
}

// List logs the call and its duration.
func (mw LoggingMiddleware[F]) List(ctx context.Context) ([]string, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method List took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("List method called")

	return mw.next.List(ctx)
}

// Count forwards to the next service.
func (mw LoggingMiddleware[F]) Count(ctx context.Context) int {
	return mw.next.Count(ctx)
}

// Remove logs the call and its duration.
func (mw LoggingMiddleware[F]) Remove(ctx context.Context, series ...string) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Remove took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Remove method called with series: %s", series)

	return mw.next.Remove(ctx, series...)
}

// Clear logs the call and its duration.
func (mw LoggingMiddleware[F]) Clear(ctx context.Context) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Clear took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Clear method called")

	return mw.next.Clear(ctx)
}

// Stop logs the call and its duration.
func (mw LoggingMiddleware[F]) Stop(ctx context.Context) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Stop took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Stop method called")

	return mw.next.Stop(ctx)
}
