// Package attrs defines telemetry attribute keys shared by the tracing and
// metrics middlewares, so spans and metrics carry the same names.
package attrs

const (
	// AttrSeries is the name of the sample series an operation targets.
	AttrSeries = "series"
	// AttrSeriesCount is the number of series an operation targets or returns.
	AttrSeriesCount = "series.count"
	// AttrSamplesCount is the number of samples recorded or read, NaN entries included.
	AttrSamplesCount = "samples.count"
	// AttrValidCount is the number of non-NaN samples a summary was computed from.
	AttrValidCount = "samples.valid"
	// AttrFailedCount is the number of series an operation failed for.
	AttrFailedCount = "failed.count"
	// AttrDefined reports whether a summary was defined (built from at least one non-NaN sample).
	AttrDefined = "summary.defined"
)
