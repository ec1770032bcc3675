package stats

// Average returns the arithmetic mean of the non-NaN entries of values.
//
// The divisor is the number of non-NaN entries, not len(values). Empty input and
// all-NaN input both return NaN.
func Average[F Float](values []F) F {
	if len(values) == 0 {
		return NaN[F]()
	}

	var sum F

	n := 0

	for _, value := range values {
		if IsNaN(value) {
			continue
		}

		sum += value
		n++
	}

	// 0/0 is NaN when every entry was filtered out.
	return sum / F(n)
}
