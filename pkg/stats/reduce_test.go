package stats_test

import (
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats/pkg/stats"
	"github.com/hyp3rd/numstats/pkg/stats/statstest"
)

func TestReductions_Empty(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {math.NaN()}, {math.NaN(), math.NaN(), math.NaN()}} {
		statstest.AssertNaN(t, stats.Min(values))
		statstest.AssertNaN(t, stats.Max(values))
		statstest.AssertNaN(t, stats.Average(values))
		statstest.AssertNaN(t, stats.Variance(values))
		statstest.AssertNaN(t, stats.VarianceWithAverage(values, 0))
		statstest.AssertNaN(t, stats.StandardDeviation(values))
	}
}

func TestReductions_SingleValue(t *testing.T) {
	for _, values := range [][]float64{{1}, {math.NaN(), 1}, {1, math.NaN(), math.NaN()}} {
		assert.Equal(t, 1.0, stats.Min(values))
		assert.Equal(t, 1.0, stats.Max(values))
		assert.Equal(t, 1.0, stats.Average(values))
		assert.Equal(t, 0.0, stats.Variance(values))
		assert.Equal(t, 0.0, stats.StandardDeviation(values))
	}
}

func TestVarianceWithAverage_TrustsGivenAverage(t *testing.T) {
	values := []float64{1, 2, 4}

	// deviations from 0 rather than from the real mean: (1 + 4 + 16) / 2
	assert.Equal(t, 10.5, stats.VarianceWithAverage(values, 0))
}

func TestVarianceWithAverage_SingleValueIgnoresAverage(t *testing.T) {
	assert.Equal(t, 0.0, stats.VarianceWithAverage([]float64{5}, 100))
}

func TestStandardDeviationWithVariance(t *testing.T) {
	assert.Equal(t, 3.0, stats.StandardDeviationWithVariance(9.0))
	assert.Equal(t, float32(0), stats.StandardDeviationWithVariance(float32(0)))
	statstest.AssertNaN(t, stats.StandardDeviationWithVariance(math.NaN()))
}

func TestMinMax_Infinities(t *testing.T) {
	values := []float64{math.NaN(), math.Inf(1), -2, math.Inf(-1)}

	assert.Equal(t, math.Inf(-1), stats.Min(values))
	assert.Equal(t, math.Inf(1), stats.Max(values))
}

func TestReductions_NamedWidth(t *testing.T) {
	type millis float32

	values := []millis{1, 2, 4}

	assert.Equal(t, millis(1), stats.Min(values))
	assert.Equal(t, millis(4), stats.Max(values))
	assert.Equal(t, millis(2.3333333), stats.Average(values))
}

func TestReductions_InputUntouched(t *testing.T) {
	values := []float64{4, math.NaN(), 1, 2}
	snapshot := append([]float64(nil), values...)

	_ = stats.NewAll(values)

	assert.Equal(t, len(snapshot), len(values))

	for i := range values {
		if stats.IsNaN(snapshot[i]) {
			assert.True(t, stats.IsNaN(values[i]))

			continue
		}

		assert.Equal(t, snapshot[i], values[i])
	}
}
