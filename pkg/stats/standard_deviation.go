package stats

// StandardDeviation returns the square root of Variance(values).
func StandardDeviation[F Float](values []F) F {
	return StandardDeviationWithVariance(Variance(values))
}

// StandardDeviationWithVariance returns the non-negative square root of a
// precomputed variance. A NaN variance yields NaN and a zero variance yields zero.
func StandardDeviationWithVariance[F Float](variance F) F {
	return sqrt(variance)
}
