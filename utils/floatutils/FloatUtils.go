// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// Linspace returns n evenly spaced values over [start, stop]. Both
// endpoints are included exactly. If n == 1, only start is returned.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	} else if n == 1 {
		return []float64{start}
	}

	values := floats.Span(make([]float64, n), start, stop)
	values[0], values[n-1] = start, stop
	return values
}

// Interleave returns the elements of a and b interleaved, a[0], b[0],
// a[1], b[1], .... Both slices must have the same length.
func Interleave(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic("interleave: slices must have the same length")
	}

	out := make([]float64, 0, 2*len(a))
	for i := range a {
		out = append(out, a[i], b[i])
	}
	return out
}
