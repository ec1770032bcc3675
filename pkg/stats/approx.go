package stats

// Machine epsilon of each supported width.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// Epsilon returns the machine epsilon of F: the gap between 1 and the next
// representable value.
func Epsilon[F Float]() F {
	if BitSize[F]() == 32 { //nolint:mnd
		return F(Epsilon32)
	}

	return F(Epsilon64)
}

// DefaultTolerance is the tolerance used by the per-width ApproxEqual helpers,
// twice the machine epsilon of F.
func DefaultTolerance[F Float]() F {
	return 2 * Epsilon[F]()
}

// ApproxEqual reports whether a and b are equal or differ by at most tolerance.
// Two NaN values are considered equal, so undefined results compare as the same outcome.
//
// It is meant for test suites comparing computed statistics with expected
// constants, not for production logic.
func ApproxEqual[F Float](a, b, tolerance F) bool {
	if a == b {
		return true
	}

	if IsNaN(a) || IsNaN(b) {
		return IsNaN(a) && IsNaN(b)
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	return diff <= tolerance
}
