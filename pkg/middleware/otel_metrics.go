package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/internal/telemetry/attrs"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware[F stats.Float] struct {
	next  numstats.Service[F]
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
	samples   metric.Int64Counter
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware[F stats.Float](next numstats.Service[F], meter metric.Meter) (numstats.Service[F], error) {
	calls, err := meter.Int64Counter("numstats.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("numstats.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	samples, err := meter.Int64Counter("numstats.samples.recorded")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	return &OTelMetricsMiddleware[F]{next: next, meter: meter, calls: calls, durations: durations, samples: samples}, nil
}

// Record implements Service.Record with metrics.
func (mw *OTelMetricsMiddleware[F]) Record(ctx context.Context, series string, values ...F) error {
	start := time.Now()
	err := mw.next.Record(ctx, series, values...)
	mw.rec(ctx, "Record", start, attribute.String(attrs.AttrSeries, series), attribute.Int(attrs.AttrSamplesCount, len(values)))

	if err == nil {
		mw.samples.Add(ctx, int64(len(values)), metric.WithAttributes(attribute.String(attrs.AttrSeries, series)))
	}

	return err
}

// Samples implements Service.Samples with metrics.
func (mw *OTelMetricsMiddleware[F]) Samples(ctx context.Context, series string) ([]F, error) {
	start := time.Now()
	values, err := mw.next.Samples(ctx, series)
	mw.rec(ctx, "Samples", start, attribute.String(attrs.AttrSeries, series), attribute.Int(attrs.AttrSamplesCount, len(values)))

	return values, err
}

// Summarize implements Service.Summarize with metrics.
func (mw *OTelMetricsMiddleware[F]) Summarize(ctx context.Context, series string) (stats.All[F], error) {
	start := time.Now()
	all, err := mw.next.Summarize(ctx, series)
	mw.rec(ctx, "Summarize", start, attribute.String(attrs.AttrSeries, series), attribute.Bool(attrs.AttrDefined, all.Defined()))

	return all, err
}

// SummarizeMany implements Service.SummarizeMany with metrics.
func (mw *OTelMetricsMiddleware[F]) SummarizeMany(ctx context.Context, series ...string) (map[string]stats.All[F], map[string]error) {
	start := time.Now()
	res, failed := mw.next.SummarizeMany(ctx, series...)
	mw.rec(ctx, "SummarizeMany", start, attribute.Int(attrs.AttrSeriesCount, len(series)), attribute.Int(attrs.AttrFailedCount, len(failed)))

	return res, failed
}

// List implements Service.List with metrics.
func (mw *OTelMetricsMiddleware[F]) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := mw.next.List(ctx)
	mw.rec(ctx, "List", start, attribute.Int(attrs.AttrSeriesCount, len(names)))

	return names, err
}

// Count returns the number of series.
func (mw *OTelMetricsMiddleware[F]) Count(ctx context.Context) int { return mw.next.Count(ctx) }

// Remove implements Service.Remove with metrics.
func (mw *OTelMetricsMiddleware[F]) Remove(ctx context.Context, series ...string) error {
	start := time.Now()
	err := mw.next.Remove(ctx, series...)
	mw.rec(ctx, "Remove", start, attribute.Int(attrs.AttrSeriesCount, len(series)))

	return err
}

// Clear implements Service.Clear with metrics.
func (mw *OTelMetricsMiddleware[F]) Clear(ctx context.Context) error {
	start := time.Now()
	err := mw.next.Clear(ctx)
	mw.rec(ctx, "Clear", start)

	return err
}

// Stop stops the underlying service.
func (mw *OTelMetricsMiddleware[F]) Stop(ctx context.Context) error { return mw.next.Stop(ctx) }

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware[F]) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("method", method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), metric.WithAttributes(base...))
}
