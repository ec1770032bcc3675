package stats

import (
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// All is a snapshot of every statistic computed from one sample sequence.
// It keeps no reference to the sequence it was built from.
type All[F Float] struct {
	Min               F
	Max               F
	Average           F
	Variance          F
	StandardDeviation F
}

// NewAll computes every statistic of values.
//
// The average is computed once and handed to VarianceWithAverage, and the
// variance is computed once and handed to StandardDeviationWithVariance, so the
// stored Average and Variance are the exact values the derived fields were built from.
func NewAll[F Float](values []F) All[F] {
	minimum := Min(values)
	maximum := Max(values)
	average := Average(values)
	variance := VarianceWithAverage(values, average)

	return All[F]{
		Min:               minimum,
		Max:               maximum,
		Average:           average,
		Variance:          variance,
		StandardDeviation: StandardDeviationWithVariance(variance),
	}
}

// Defined reports whether the record was built from at least one non-NaN sample.
// It looks at Min, which is NaN only when no sample survived filtering; the
// average of opposite infinities is NaN even though the record has samples.
func (a All[F]) Defined() bool {
	return IsDefined(a.Min)
}

// String renders the record as five "label: value" lines, each ending in a newline.
// The output is meant for people and is not a stable machine-readable format.
func (a All[F]) String() string {
	var sb strings.Builder

	writeLine(&sb, "min", a.Min)
	writeLine(&sb, "max", a.Max)
	writeLine(&sb, "average", a.Average)
	writeLine(&sb, "variance", a.Variance)
	writeLine(&sb, "standard deviation", a.StandardDeviation)

	return sb.String()
}

func writeLine[F Float](sb *strings.Builder, label string, value F) {
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(FormatValue(value))
	sb.WriteByte('\n')
}

// FormatValue returns the shortest decimal representation of value that
// round-trips in the width of F. Integral values keep a trailing ".0" so they
// still read as floating point; NaN renders as "NaN" and infinities as "inf" and "-inf".
// Non-zero magnitudes below 1e-4 or from 1e16 up use exponent form, such as "1e-7" or "1.5e16".
func FormatValue[F Float](value F) string {
	v := float64(value)

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if useExponent(value) {
		return formatExponent(v, BitSize[F]())
	}

	s := strconv.FormatFloat(v, 'f', -1, BitSize[F]())
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// useExponent reports whether value is rendered in exponent form.
// The bounds are compared in the width of F.
func useExponent[F Float](value F) bool {
	small, large := F(1e-4), F(1e16)

	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return magnitude != 0 && (magnitude < small || magnitude >= large)
}

// formatExponent writes v as a shortest mantissa followed by a bare exponent: "1e-7", "-2.5e20".
func formatExponent(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'e', -1, bitSize)

	mantissa, exponent, _ := strings.Cut(s, "e")

	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}

	return mantissa + "e" + strconv.Itoa(exp)
}

// BitSize returns 32 or 64 depending on the width of F.
func BitSize[F Float]() int {
	var zero F

	return int(unsafe.Sizeof(zero)) * 8 //nolint:mnd
}
