// Package f64 is the float64 surface of the statistics core.
//
// Every function treats NaN entries as missing measurements and returns NaN when
// no valid entry remains. No conversion to another width is performed.
package f64

import "github.com/hyp3rd/numstats/pkg/stats"

// All is the float64 aggregate record.
type All = stats.All[float64]

// NewAll computes min, max, average, variance and standard deviation of values,
// reusing the average for the variance and the variance for the standard deviation.
func NewAll(values []float64) All { return stats.NewAll(values) }

// Min returns the smallest non-NaN entry of values, or NaN if there is none.
func Min(values []float64) float64 { return stats.Min(values) }

// Max returns the largest non-NaN entry of values, or NaN if there is none.
func Max(values []float64) float64 { return stats.Max(values) }

// Average returns the mean of the non-NaN entries of values, or NaN if there is none.
func Average(values []float64) float64 { return stats.Average(values) }

// Variance returns the sample variance (divisor n-1) of the non-NaN entries of values.
func Variance(values []float64) float64 { return stats.Variance(values) }

// VarianceWithAverage returns the sample variance of values around a precomputed average.
// The average is not validated against values.
func VarianceWithAverage(values []float64, average float64) float64 {
	return stats.VarianceWithAverage(values, average)
}

// StandardDeviation returns the square root of Variance(values).
func StandardDeviation(values []float64) float64 { return stats.StandardDeviation(values) }

// StandardDeviationWithVariance returns the square root of a precomputed variance.
func StandardDeviationWithVariance(variance float64) float64 {
	return stats.StandardDeviationWithVariance(variance)
}

// IsDefined reports whether value is a defined statistic (not NaN).
func IsDefined(value float64) bool { return stats.IsDefined(value) }
