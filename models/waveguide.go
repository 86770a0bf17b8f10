// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// waveguide.go - straight and bent waveguide transmission.
//
// Formula (first-order dispersion around wl0):
//
//	neff(λ) = neff − (λ − wl0)·(ng − neff)/wl0
//	φ(λ)    = 2π·neff(λ)·length/λ
//	t(λ)    = 10^(−loss·length/20) · exp(−jφ)
//
// loss is in dB per unit length (µm⁻¹ with length in µm). The same formula
// serves straights, bends (different defaults only) and tapers.

package models

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// Waveguide is the physical straight-waveguide generator.
var Waveguide = NewGenerator("waveguide", KindSDict, WavelengthC, Params{
	"wl0":    WavelengthC,
	"neff":   2.34,
	"ng":     3.4,
	"length": 10.0,
	"loss":   0.0,
}, evalWaveguide)

// Bend is the physical bend generator: the waveguide formula with a bend's
// default length.
var Bend = NewGenerator("bend", KindSDict, 1.5, Params{
	"wl0":    WavelengthC,
	"neff":   2.34,
	"ng":     3.4,
	"length": 20.0,
	"loss":   0.0,
}, evalWaveguide)

// WaveguideTransmission evaluates the waveguide formula per sample.
func WaveguideTransmission(wl []float64, wl0, neff, ng, length, loss float64) []complex128 {
	amplitude := math.Pow(10, -loss*length/20)
	dneff := (ng - neff) / wl0
	return vec.MapComplex(wl, func(l float64) complex128 {
		n := neff - (l-wl0)*dneff
		phase := 2 * math.Pi * n * length / l
		return complex(amplitude, 0) * cmplx.Exp(complex(0, -phase))
	})
}

func evalWaveguide(wl []float64, p Params) (sdict.SDict, error) {
	v, err := p.floats("wl0", "neff", "ng", "length", "loss")
	if err != nil {
		return sdict.SDict{}, err
	}
	t := WaveguideTransmission(wl, v[0], v[1], v[2], v[3], v[4])

	return sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o2"): t,
	})
}
