// Package statstest provides assertion helpers for tests that compare computed
// statistics with expected floating-point values.
package statstest

import (
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats/pkg/stats"
)

// AssertApproxEqual fails the test unless got equals want within tolerance.
// The tolerance defaults to twice the machine epsilon of F. Two NaN values compare equal.
func AssertApproxEqual[F stats.Float](t testing.TB, want, got F, tolerance ...F) {
	t.Helper()

	tol := stats.DefaultTolerance[F]()
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}

	ok := stats.ApproxEqual(want, got, tol)
	if !ok {
		diff := want - got
		if diff < 0 {
			diff = -diff
		}

		t.Logf("approximate equality failed\n want: %v\n got: %v\n abs_diff: %v\n ε: %v", want, got, diff, tol)
	}

	assert.True(t, ok)
}

// AssertNaN fails the test unless got is NaN.
func AssertNaN[F stats.Float](t testing.TB, got F) {
	t.Helper()

	if stats.IsDefined(got) {
		t.Logf("expected NaN, got %v", got)
	}

	assert.True(t, stats.IsNaN(got))
}

// AssertAllApproxEqual compares two aggregate records field by field.
func AssertAllApproxEqual[F stats.Float](t testing.TB, want, got stats.All[F]) {
	t.Helper()

	AssertApproxEqual(t, want.Min, got.Min)
	AssertApproxEqual(t, want.Max, got.Max)
	AssertApproxEqual(t, want.Average, got.Average)
	AssertApproxEqual(t, want.Variance, got.Variance)
	AssertApproxEqual(t, want.StandardDeviation, got.StandardDeviation)
}

// WithNaNs returns a copy of values with NaN entries inserted so that they land
// at the given positions of the result. Positions past the end append.
func WithNaNs[F stats.Float](values []F, positions ...int) []F {
	out := make([]F, 0, len(values)+len(positions))
	out = append(out, values...)

	for _, pos := range positions {
		if pos < 0 || pos > len(out) {
			pos = len(out)
		}

		out = append(out, 0)
		copy(out[pos+1:], out[pos:])
		out[pos] = stats.NaN[F]()
	}

	return out
}
