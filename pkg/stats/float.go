package stats

import "math"

// Float is the set of scalar types the reductions are defined for.
type Float interface {
	~float32 | ~float64
}

// NaN returns the "undefined" sentinel for the width of F.
func NaN[F Float]() F {
	return F(math.NaN())
}

// IsNaN reports whether value is NaN.
func IsNaN[F Float](value F) bool {
	return value != value
}

// IsDefined reports whether value is a defined statistic, that is, not NaN.
// Callers that must distinguish "no valid data" from a genuine zero check this
// before consuming a result.
func IsDefined[F Float](value F) bool {
	return !IsNaN(value)
}

// Count returns the number of non-NaN entries in values.
func Count[F Float](values []F) int {
	n := 0

	for _, value := range values {
		if !IsNaN(value) {
			n++
		}
	}

	return n
}

// sqrt returns the square root of value in the width of F.
// The float64 square root is correctly rounded, so narrowing it to float32 gives
// the correctly rounded float32 result.
func sqrt[F Float](value F) F {
	return F(math.Sqrt(float64(value)))
}
