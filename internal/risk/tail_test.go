package risk

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestQuantileSorted(t *testing.T) {
	t.Run("golden values", func(t *testing.T) {
		sorted := []float64{1, 2, 3, 4}
		assert.InDelta(t, 1.0, QuantileSorted(sorted, 0), 1e-12)
		assert.InDelta(t, 1.75, QuantileSorted(sorted, 0.25), 1e-12)
		assert.InDelta(t, 2.5, QuantileSorted(sorted, 0.5), 1e-12)
		assert.InDelta(t, 3.25, QuantileSorted(sorted, 0.75), 1e-12)
		assert.InDelta(t, 4.0, QuantileSorted(sorted, 1), 1e-12)
	})

	t.Run("clamps out of range", func(t *testing.T) {
		sorted := []float64{5, 9}
		assert.Equal(t, 5.0, QuantileSorted(sorted, -0.5))
		assert.Equal(t, 9.0, QuantileSorted(sorted, 1.5))
	})

	t.Run("single element", func(t *testing.T) {
		assert.Equal(t, 7.0, QuantileSorted([]float64{7}, 0.3))
	})

	t.Run("empty is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(QuantileSorted(nil, 0.5)))
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("rejects invalid confidence levels", func(t *testing.T) {
		for _, conf := range []float64{0, 1, -0.1, 1.5} {
			_, err := Analyze([]float64{1, 2, 3}, conf)
			assert.ErrorIs(t, err, ErrInvalidConfidenceLevel, "conf=%g", conf)
		}
	})

	t.Run("rejects empty distribution", func(t *testing.T) {
		_, err := Analyze(nil, 0.05)
		assert.ErrorIs(t, err, ErrEmptyDistribution)
	})

	t.Run("VaR ordering and bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		results := make([]float64, 2000)
		for i := range results {
			results[i] = rng.NormFloat64()*1.3 + 2.4
		}
		sorted := append([]float64(nil), results...)
		sort.Float64s(sorted)

		for _, conf := range []float64{0.01, 0.05, 0.10, 0.5, 0.99} {
			rep, err := Analyze(results, conf)
			require.NoError(t, err)

			assert.LessOrEqual(t, rep.LowerVaR, rep.UpperVaR, "conf=%g", conf)
			assert.GreaterOrEqual(t, rep.LowerVaR, sorted[0])
			assert.LessOrEqual(t, rep.UpperVaR, sorted[len(sorted)-1])
		}
	})

	t.Run("CVaR lies beyond its VaR", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		results := make([]float64, 5000)
		for i := range results {
			results[i] = rng.NormFloat64()
		}

		rep, err := Analyze(results, 0.05)
		require.NoError(t, err)

		require.True(t, rep.LowerCVaRValid)
		require.True(t, rep.UpperCVaRValid)
		assert.LessOrEqual(t, rep.LowerCVaR, rep.LowerVaR)
		assert.GreaterOrEqual(t, rep.UpperCVaR, rep.UpperVaR)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		results := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
		shuffled := []float64{9, 5, 5, 4, 3, 3, 2, 6, 1, 1}

		a, err := Analyze(results, 0.2)
		require.NoError(t, err)
		b, err := Analyze(shuffled, 0.2)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("degenerate point mass has undefined CVaRs", func(t *testing.T) {
		results := make([]float64, 100)
		for i := range results {
			results[i] = 5.0
		}

		rep, err := Analyze(results, 0.05)
		require.NoError(t, err)

		assert.Equal(t, 5.0, rep.LowerVaR)
		assert.Equal(t, 5.0, rep.UpperVaR)
		assert.False(t, rep.LowerCVaRValid)
		assert.False(t, rep.UpperCVaRValid)
	})

	t.Run("tail means on a known small distribution", func(t *testing.T) {
		// sorted: 1..10; conf 0.2 => lower q=0.1 (pos 0.9 -> 1.9),
		// upper q=0.9 (pos 8.1 -> 9.1). Strict tails: {1} and {10}.
		results := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		rep, err := Analyze(results, 0.2)
		require.NoError(t, err)

		assert.InDelta(t, 1.9, rep.LowerVaR, 1e-12)
		assert.InDelta(t, 9.1, rep.UpperVaR, 1e-12)
		require.True(t, rep.LowerCVaRValid)
		require.True(t, rep.UpperCVaRValid)
		assert.InDelta(t, 1.0, rep.LowerCVaR, 1e-12)
		assert.InDelta(t, 10.0, rep.UpperCVaR, 1e-12)
	})
}
