package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/internal/telemetry/attrs"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// OTelTracingMiddleware wraps numstats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware[F stats.Float] struct {
	next   numstats.Service[F]
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption[F stats.Float] func(*OTelTracingMiddleware[F])

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes[F stats.Float](attributes ...attribute.KeyValue) OTelTracingOption[F] {
	return func(m *OTelTracingMiddleware[F]) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware[F stats.Float](next numstats.Service[F], tracer trace.Tracer, opts ...OTelTracingOption[F]) numstats.Service[F] {
	mw := &OTelTracingMiddleware[F]{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Record implements Service.Record with tracing.
func (mw OTelTracingMiddleware[F]) Record(ctx context.Context, series string, values ...F) error {
	ctx, span := mw.startSpan(ctx, "numstats.Record",
		attribute.String(attrs.AttrSeries, series),
		attribute.Int(attrs.AttrSamplesCount, len(values)))
	defer span.End()

	err := mw.next.Record(ctx, series, values...)
	recordError(span, err)

	return err
}

// Samples implements Service.Samples with tracing.
func (mw OTelTracingMiddleware[F]) Samples(ctx context.Context, series string) ([]F, error) {
	ctx, span := mw.startSpan(ctx, "numstats.Samples", attribute.String(attrs.AttrSeries, series))
	defer span.End()

	values, err := mw.next.Samples(ctx, series)
	span.SetAttributes(attribute.Int(attrs.AttrSamplesCount, len(values)))
	recordError(span, err)

	return values, err
}

// Summarize implements Service.Summarize with tracing.
func (mw OTelTracingMiddleware[F]) Summarize(ctx context.Context, series string) (stats.All[F], error) {
	ctx, span := mw.startSpan(ctx, "numstats.Summarize", attribute.String(attrs.AttrSeries, series))
	defer span.End()

	all, err := mw.next.Summarize(ctx, series)
	span.SetAttributes(attribute.Bool(attrs.AttrDefined, all.Defined()))
	recordError(span, err)

	return all, err
}

// SummarizeMany implements Service.SummarizeMany with tracing.
func (mw OTelTracingMiddleware[F]) SummarizeMany(ctx context.Context, series ...string) (map[string]stats.All[F], map[string]error) {
	ctx, span := mw.startSpan(ctx, "numstats.SummarizeMany", attribute.Int(attrs.AttrSeriesCount, len(series)))
	defer span.End()

	res, failed := mw.next.SummarizeMany(ctx, series...)
	span.SetAttributes(attribute.Int(attrs.AttrFailedCount, len(failed)))

	return res, failed
}

// List implements Service.List with tracing.
func (mw OTelTracingMiddleware[F]) List(ctx context.Context) ([]string, error) {
	ctx, span := mw.startSpan(ctx, "numstats.List")
	defer span.End()

	names, err := mw.next.List(ctx)
	span.SetAttributes(attribute.Int(attrs.AttrSeriesCount, len(names)))
	recordError(span, err)

	return names, err
}

// Count implements Service.Count with tracing.
func (mw OTelTracingMiddleware[F]) Count(ctx context.Context) int {
	ctx, span := mw.startSpan(ctx, "numstats.Count")
	defer span.End()

	n := mw.next.Count(ctx)
	span.SetAttributes(attribute.Int(attrs.AttrSeriesCount, n))

	return n
}

// Remove implements Service.Remove with tracing.
func (mw OTelTracingMiddleware[F]) Remove(ctx context.Context, series ...string) error {
	ctx, span := mw.startSpan(ctx, "numstats.Remove", attribute.Int(attrs.AttrSeriesCount, len(series)))
	defer span.End()

	err := mw.next.Remove(ctx, series...)
	recordError(span, err)

	return err
}

// Clear implements Service.Clear with tracing.
func (mw OTelTracingMiddleware[F]) Clear(ctx context.Context) error {
	ctx, span := mw.startSpan(ctx, "numstats.Clear")
	defer span.End()

	err := mw.next.Clear(ctx)
	recordError(span, err)

	return err
}

// Stop implements Service.Stop with tracing.
func (mw OTelTracingMiddleware[F]) Stop(ctx context.Context) error {
	ctx, span := mw.startSpan(ctx, "numstats.Stop")
	defer span.End()

	return mw.next.Stop(ctx)
}

// startSpan starts a span with common and provided attributes.
func (mw OTelTracingMiddleware[F]) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
