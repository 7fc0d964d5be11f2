package curvy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampler_EvenlySpacedSamples(t *testing.T) {
	testCases := []struct {
		name   string
		domain Interval
		n      int
	}{
		{"two samples", Interval{Min: -1, Max: 1}, 2},
		{"odd count", Interval{Min: -6, Max: 6}, 7},
		{"original defaults", Interval{Min: -6, Max: 6}, 1000},
		{"narrow domain", Interval{Min: 0.1, Max: 0.3}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			pts, err := Sample(func(x float64) float64 { return x * x }, tc.domain, tc.n)
			assert.NoError(err)
			assert.Len(pts, tc.n)
			assert.InDelta(tc.domain.Min, pts[0].X, 1e-12)
			assert.InDelta(tc.domain.Max, pts[tc.n-1].X, 1e-12)

			for i := 1; i < len(pts); i++ {
				assert.Greater(pts[i].X, pts[i-1].X)
				assert.Equal(pts[i].X*pts[i].X, pts[i].Y)
			}
		})
	}
}

func TestSampler_SpacingFormula(t *testing.T) {
	pts, err := Sample(Zero, Interval{Min: -1, Max: 1}, 5)
	assert.NoError(t, err)

	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i, p := range pts {
		assert.Equal(t, want[i], p.X)
	}
}

func TestSampler_PassesNonFiniteValues(t *testing.T) {
	assert := assert.New(t)

	pts, err := Sample(func(x float64) float64 { return 1 / x }, Interval{Min: -1, Max: 1}, 5)
	assert.NoError(err)
	assert.True(math.IsInf(pts[2].Y, 1))

	pts, err = Sample(math.Sqrt, Interval{Min: -1, Max: 1}, 3)
	assert.NoError(err)
	assert.True(math.IsNaN(pts[0].Y))
	assert.Equal(1.0, pts[2].Y)
}

func TestSampler_InvalidArguments(t *testing.T) {
	assert := assert.New(t)

	_, err := Sample(nil, Interval{Min: 0, Max: 1}, 10)
	assert.Error(err)

	_, err = Sample(Zero, Interval{Min: 0, Max: 1}, 1)
	assert.Error(err)

	_, err = Sample(Zero, Interval{Min: 1, Max: 1}, 10)
	assert.Error(err)

	_, err = Sample(Zero, Interval{Min: 0, Max: math.Inf(1)}, 10)
	assert.Error(err)
}

func TestInterval_Contains(t *testing.T) {
	assert := assert.New(t)
	rng := Interval{Min: -10, Max: 10}

	assert.True(rng.Contains(-10))
	assert.True(rng.Contains(10))
	assert.True(rng.Contains(0))
	assert.False(rng.Contains(10.0001))
	assert.False(rng.Contains(-10.0001))
	assert.False(rng.Contains(math.NaN()))
	assert.False(rng.Contains(math.Inf(1)))
	assert.False(rng.Contains(math.Inf(-1)))
}

// Zero is the constant zero function.
func Zero(float64) float64 { return 0 }
