package f64

import "github.com/hyp3rd/numstats/pkg/stats"

// Epsilon is the float64 machine epsilon.
const Epsilon = float64(stats.Epsilon64)

// ApproxEqual reports whether a and b are equal or within 2 * Epsilon of each other.
// Intended for tests.
func ApproxEqual(a, b float64) bool {
	return stats.ApproxEqual(a, b, 2*Epsilon)
}
