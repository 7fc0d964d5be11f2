package curvy

import (
	"math"

	"github.com/pkg/errors"
)

// Func is a real valued function of one real argument.
// It may return +Inf, -Inf or NaN for any input.
type Func func(x float64) float64

// Point is a single sample of a function, expressed in domain/range units.
type Point struct {
	X, Y float64
}

// Interval is a closed range of real values.
type Interval struct {
	Min, Max float64
}

// Span returns the length of the interval.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

// Contains reports whether v is a finite value inside the interval, bounds included.
func (i Interval) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= i.Min && v <= i.Max
}

// Validate checks that both bounds are finite and Min < Max.
func (i Interval) Validate() error {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || math.IsInf(i.Min, 0) || math.IsInf(i.Max, 0) {
		return errors.Errorf("interval bounds should be finite, got [%v, %v]", i.Min, i.Max)
	}
	if i.Min >= i.Max {
		return errors.Errorf("interval lower bound should be less than the upper bound, got [%v, %v]", i.Min, i.Max)
	}
	return nil
}

// Sample evaluates f at n evenly spaced points of the domain, both endpoints included.
// Non-finite results are passed through unchanged.
func Sample(f Func, domain Interval, n int) ([]Point, error) {
	if f == nil {
		return nil, errors.New("cannot sample a nil function")
	}
	if n < 2 {
		return nil, errors.Errorf("at least two samples are required, got %d", n)
	}
	if err := domain.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid domain")
	}

	step := domain.Span() / float64(n-1)
	points := make([]Point, n)
	for i := range points {
		x := domain.Min + float64(i)*step
		if i == n-1 {
			// Avoid accumulating a rounding error on the last sample.
			x = domain.Max
		}
		points[i] = Point{X: x, Y: f(x)}
	}
	return points, nil
}
