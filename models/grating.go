// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// grating.go - fiber grating couplers with a Gaussian-in-wavelength passband.
//
//	σ    = bandwidth / (2√(2 ln 2))         (bandwidth is the 3 dB width)
//	t(λ) = 10^(−loss/20) · exp(−(λ − wl0)² / (2σ²))
//
// o1 is the waveguide port and o2 the fiber port; reflection terms sit on
// the (o1,o1) and (o2,o2) diagonal.

package models

import (
	"math"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// GratingCoupler is the physical grating-coupler generator.
var GratingCoupler = NewGenerator("grating_coupler", KindSDict, WavelengthC, Params{
	"wl0":              WavelengthC,
	"loss":             0.0,
	"reflection":       0.0,
	"reflection_fiber": 0.0,
	"bandwidth":        0.06,
}, evalGratingCoupler)

// GCRectangular is the process-level grating coupler; its centre is named
// "wavelength" and its default 3 dB bandwidth is 40 nm.
var GCRectangular = NewGenerator("gc_rectangular", KindSDict, WavelengthC, Params{
	"wavelength":       WavelengthC,
	"loss":             0.0,
	"reflection":       0.0,
	"reflection_fiber": 0.0,
	"bandwidth":        40 * nm,
}, evalGCRectangular)

// GratingTransmission evaluates the coupling amplitude per sample.
func GratingTransmission(wl []float64, wl0, bandwidth, loss float64) []complex128 {
	amplitude := math.Pow(10, -loss/20)
	sigma := bandwidth / (2 * math.Sqrt(2*math.Ln2))
	return vec.MapComplex(wl, func(l float64) complex128 {
		d := l - wl0
		return complex(amplitude*math.Exp(-(d*d)/(2*sigma*sigma)), 0)
	})
}

func evalGratingCoupler(wl []float64, p Params) (sdict.SDict, error) {
	v, err := p.floats("wl0", "loss", "reflection", "reflection_fiber", "bandwidth")
	if err != nil {
		return sdict.SDict{}, err
	}
	return gratingRecord(wl, v[0], v[1], v[2], v[3], v[4])
}

func evalGCRectangular(wl []float64, p Params) (sdict.SDict, error) {
	v, err := p.floats("wavelength", "loss", "reflection", "reflection_fiber", "bandwidth")
	if err != nil {
		return sdict.SDict{}, err
	}
	return gratingRecord(wl, v[0], v[1], v[2], v[3], v[4])
}

func gratingRecord(wl []float64, wl0, loss, reflection, reflectionFiber, bandwidth float64) (sdict.SDict, error) {
	n := len(wl)
	return sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o1"): vec.Fill(n, complex(reflection, 0)),
		sdict.P("o1", "o2"): GratingTransmission(wl, wl0, bandwidth, loss),
		sdict.P("o2", "o2"): vec.Fill(n, complex(reflectionFiber, 0)),
	})
}
