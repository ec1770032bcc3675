package f32

import "github.com/hyp3rd/numstats/pkg/stats"

// Epsilon is the float32 machine epsilon.
const Epsilon = float32(stats.Epsilon32)

// ApproxEqual reports whether a and b are equal or within 2 * Epsilon of each other.
// Intended for tests.
func ApproxEqual(a, b float32) bool {
	return stats.ApproxEqual(a, b, 2*Epsilon)
}
