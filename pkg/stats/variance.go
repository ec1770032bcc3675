package stats

// Variance returns the Bessel-corrected sample variance of the non-NaN entries of values.
//
// It makes two passes: one for the average and one for the squared deviations.
// Empty and all-NaN input return NaN; a single non-NaN entry returns exactly 0.
func Variance[F Float](values []F) F {
	if len(values) == 0 {
		return NaN[F]()
	}

	return VarianceWithAverage(values, Average(values))
}

// VarianceWithAverage returns the Bessel-corrected sample variance of the non-NaN
// entries of values, measuring deviations from the supplied average.
//
// The average is trusted as given: it is not checked against values, and an
// average computed from a different sequence silently yields a different result.
// This lets callers that already hold the average skip a pass over the data.
//
// Empty and all-NaN input return NaN; a single non-NaN entry returns exactly 0.
func VarianceWithAverage[F Float](values []F, average F) F {
	if len(values) == 0 {
		return NaN[F]()
	}

	var sum F

	n := 0

	for _, value := range values {
		if IsNaN(value) {
			continue
		}

		delta := value - average
		// the explicit conversion rounds the product and prevents FMA fusion
		sum += F(delta * delta)
		n++
	}

	switch n {
	case 0:
		return NaN[F]()
	case 1:
		return 0
	default:
		return sum / F(n-1)
	}
}
