// Package stats computes descriptive statistics over in-memory sample sequences,
// such as network latency measurements.
//
// Every reduction is written once over the Float constraint and instantiated for
// float32 and float64. Arithmetic is carried out in the width of the input so the
// two precisions keep their own rounding behavior.
//
// NaN entries are treated as missing measurements: they are never selected as
// min or max, never summed and never counted. Empty input, or input made only of
// NaN entries, yields NaN for every statistic. NaN is the only failure signal;
// use IsDefined before consuming a result where "zero" and "undefined" must be told apart.
//
// The functions are pure: they do not retain, mutate or resize their input and
// are safe to call concurrently on independent inputs.
package stats
