// Package curves is a catalogue of ready-made real functions to plot.
package curves

import (
	"fmt"
	"math"
	"sort"
)

// DefaultPeriod is the half period l used by the Fourier expansions.
const DefaultPeriod = 1.0

// FourierSine returns the n-th term of the Fourier sine series of f(x) = x on [0, l]:
// (-1)^(n+1) * 2l/(nπ) * sin(nπx/l).
func FourierSine(n int, l float64) func(float64) float64 {
	sign := 1.0
	if n%2 == 0 {
		sign = -1
	}
	coef := sign * 2 * l / (float64(n) * math.Pi)
	return func(x float64) float64 {
		return coef * math.Sin(float64(n)*math.Pi*x/l)
	}
}

// FourierSineSum returns the partial sum of the first terms of the Fourier sine series.
func FourierSineSum(terms int, l float64) func(float64) float64 {
	fns := make([]func(float64) float64, terms)
	for i := range fns {
		fns[i] = FourierSine(i+1, l)
	}
	return Sum(fns...)
}

// FourierCosine0 is the constant term a0/2 of the Fourier cosine series of f(x) = x on [0, l].
func FourierCosine0(l float64) func(float64) float64 {
	return func(float64) float64 {
		return l / 2
	}
}

// FourierCosine1 is the first cosine term of the series.
func FourierCosine1(l float64) func(float64) float64 {
	return func(x float64) float64 {
		return -4 * l / (math.Pi * math.Pi) * math.Cos(math.Pi*x/l)
	}
}

// FourierCosine3 is the third cosine term of the series.
func FourierCosine3(l float64) func(float64) float64 {
	return func(x float64) float64 {
		return -4 * l / (9 * math.Pi * math.Pi) * math.Cos(3*math.Pi*x/l)
	}
}

// Sum adds the functions pointwise.
func Sum(fns ...func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		var y float64
		for _, f := range fns {
			y += f(x)
		}
		return y
	}
}

// Reciprocal is 1/x, infinite at zero.
func Reciprocal(x float64) float64 { return 1 / x }

// Zero is the constant zero function.
func Zero(float64) float64 { return 0 }

// Identity returns its argument.
func Identity(x float64) float64 { return x }

// Tangent is tan(x).
func Tangent(x float64) float64 { return math.Tan(x) }

// Wavy is sin(5x) - x² + 1/(x+2) + 7.
func Wavy(x float64) float64 {
	return math.Sin(5*x) - x*x + 1/(x+2) + 7
}

// Sqrt is the square root, NaN for negative arguments.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

var registry = map[string]func(float64) float64{
	"fourier":    FourierSineSum(7, DefaultPeriod),
	"cosine":     Sum(FourierCosine0(DefaultPeriod), FourierCosine1(DefaultPeriod), FourierCosine3(DefaultPeriod)),
	"reciprocal": Reciprocal,
	"zero":       Zero,
	"identity":   Identity,
	"tan":        Tangent,
	"wavy":       Wavy,
	"sqrt":       Sqrt,
}

// Lookup returns the function registered under name.
func Lookup(name string) (func(float64) float64, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q, available: %v", name, Names())
	}
	return fn, nil
}

// Names returns the registered function names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
