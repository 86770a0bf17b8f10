// SPDX-License-Identifier: MIT
// Package: pdkmodels/vec
//
// vec.go - element-wise kernels over wavelength axes.
//
// Contract:
//   - Inputs are never mutated; every kernel returns a freshly allocated slice.
//   - Output length always equals input length (broadcast of a scalar is Fill).
//   - Fixed loop order 0..n-1 for bitwise-reproducible results.
//   - Reductions propagate NaN: one NaN sample makes Max NaN.
//
// Slice arithmetic is delegated to gonum floats/cmplxs; the closure-driven
// kernels (Map, MapComplex, Fill, Phase) have no gonum counterpart.

package vec

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Scalar wraps a single wavelength into a length-1 axis.
func Scalar(x float64) []float64 {
	return []float64{x}
}

// Fill returns n copies of v (the ones_like(x)*v broadcast).
// Complexity: O(n).
func Fill(n int, v complex128) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Linspace returns n evenly spaced samples over [start, stop].
// n == 1 yields []float64{start}. Returns ErrBadLength for n < 1.
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, ErrBadLength)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	out := floats.Span(make([]float64, n), start, stop)
	// pin the last sample so rounding never drifts past stop
	out[n-1] = stop

	return out, nil
}

// Map evaluates f at every sample of x.
// Complexity: O(n) calls of f.
func Map(x []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
	}

	return out
}

// MapComplex evaluates a complex-valued f at every sample of x.
// Complexity: O(n) calls of f.
func MapComplex(x []float64, f func(float64) complex128) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = f(v)
	}

	return out
}

// Scale returns s*x.
func Scale(x []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(x)), s, x)
}

// Sqrt returns the element-wise square root; negative samples yield NaN.
func Sqrt(x []float64) []float64 {
	return Map(x, math.Sqrt)
}

// Max returns the largest sample, or NaN if any sample is NaN.
// Returns ErrEmpty for len(x) == 0.
func Max(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("Max: %w", ErrEmpty)
	}
	if floats.HasNaN(x) {
		return math.NaN(), nil
	}

	return floats.Max(x), nil
}

// ToComplex lifts a real envelope into complex coefficients with zero phase.
func ToComplex(x []float64) []complex128 {
	return cmplxs.Complex(make([]complex128, len(x)), x, make([]float64, len(x)))
}

// MulScalar returns s*z.
func MulScalar(z []complex128, s complex128) []complex128 {
	return cmplxs.ScaleTo(make([]complex128, len(z)), s, z)
}

// Abs returns |z| per sample (amplitude transfer of an S-parameter).
func Abs(z []complex128) []float64 {
	out := make([]float64, len(z))
	cmplxs.Abs(out, z)

	return out
}

// Abs2 returns |z|^2 per sample (power transfer of an S-parameter).
func Abs2(z []complex128) []float64 {
	out := Abs(z)
	floats.Mul(out, out)

	return out
}

// Phase returns arg(z) in radians per sample.
func Phase(z []complex128) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = cmplx.Phase(v)
	}

	return out
}

// AllClose reports whether a and b have equal length and every pair of
// samples differs by at most tol in modulus. NaN samples never compare close.
func AllClose(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	if cmplxs.HasNaN(a) || cmplxs.HasNaN(b) {
		return false
	}

	return cmplxs.Distance(a, b, math.Inf(1)) <= tol
}
