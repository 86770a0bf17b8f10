// SPDX-License-Identifier: MIT

// Package vec provides the small set of element-wise kernels used to evaluate
// photonic S-parameter models over a wavelength axis.
//
// What is here?
//
//	Every model in pdkmodels is a closed-form function of wavelength. The
//	kernels in this package take a real-valued axis ([]float64, µm) and
//	produce real envelopes or complex coefficients ([]complex128) of the
//	same length, so a model written once works for a single wavelength
//	(a length-1 slice) and for a full sweep alike.
//
// Kernels:
//   - Fill, Scalar, Linspace  - axis and constant construction
//   - Map, MapComplex          - element-wise evaluation of a closure
//   - Scale, Sqrt, Max         - real-valued helpers for spectral envelopes
//   - ToComplex, MulScalar     - lifting envelopes into complex coefficients
//   - Abs, Abs2, Phase, AllClose - inspection helpers for callers and tests
//
// Determinism:
//
//	All loops run 0..n-1, allocate exactly one output slice and never mutate
//	their inputs. Slice arithmetic runs on gonum.org/v1/gonum/floats and
//	cmplxs. Nothing here validates physics: NaN and ±Inf propagate, and Max
//	of a sweep holding a NaN is NaN.
package vec
