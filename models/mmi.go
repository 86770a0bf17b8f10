// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// mmi.go - multimode interferometer splitters with a Gaussian envelope in
// frequency space. Evanescent couplers reuse the 2×2 generator.

package models

import (
	"math"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// MMI1x2 splits o1 equally into o2 and o3.
var MMI1x2 = NewGenerator("mmi1x2", KindSDict, WavelengthC, Params{
	"wl0":     WavelengthC,
	"fwhm":    0.2,
	"loss_dB": 0.3,
}, evalMMI1x2)

// MMI2x2 couples (o1,o2) to (o3,o4). The cross path is evaluated at
// wl0+shift and carries a 90° phase.
var MMI2x2 = NewGenerator("mmi2x2", KindSDict, WavelengthC, Params{
	"wl0":     WavelengthC,
	"fwhm":    0.2,
	"loss_dB": 0.3,
	"shift":   0.005,
}, evalMMI2x2)

// MMIAmplitude returns the per-port amplitude of an MMI:
//
//	maxP  = 10^(−|lossDB|/10)
//	σ     = (1/(wl0−fwhm/2) − 1/(wl0+fwhm/2)) / (2√(2 ln 2))
//	P(λ)  = exp(−(1/λ − 1/wl0)² / (2σ²))
//	amp   = √(maxP · P/max(P) / 2)
//
// max(P) is taken over the evaluated samples, so the brightest sample gets
// the full (halved) power. Returns vec.ErrEmpty for an empty wl.
func MMIAmplitude(wl []float64, wl0, fwhm, lossDB float64) ([]float64, error) {
	maxPower := math.Pow(10, -math.Abs(lossDB)/10)
	f0 := 1 / wl0
	f1 := 1 / (wl0 + fwhm/2)
	f2 := 1 / (wl0 - fwhm/2)
	sigma := (f2 - f1) / (2 * math.Sqrt(2*math.Ln2))

	power := vec.Map(wl, func(l float64) float64 {
		d := 1/l - f0
		return math.Exp(-(d * d) / (2 * sigma * sigma))
	})
	peak, err := vec.Max(power)
	if err != nil {
		return nil, err
	}
	power = vec.Scale(power, maxPower/peak/2)

	return vec.Sqrt(power), nil
}

func evalMMI1x2(wl []float64, p Params) (sdict.SDict, error) {
	v, err := p.floats("wl0", "fwhm", "loss_dB")
	if err != nil {
		return sdict.SDict{}, err
	}
	amp, err := MMIAmplitude(wl, v[0], v[1], v[2])
	if err != nil {
		return sdict.SDict{}, err
	}
	thru := vec.ToComplex(amp)

	return sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o2"): thru,
		sdict.P("o1", "o3"): thru,
	})
}

func evalMMI2x2(wl []float64, p Params) (sdict.SDict, error) {
	v, err := p.floats("wl0", "fwhm", "loss_dB", "shift")
	if err != nil {
		return sdict.SDict{}, err
	}
	wl0, fwhm, lossDB, shift := v[0], v[1], v[2], v[3]

	thruAmp, err := MMIAmplitude(wl, wl0, fwhm, lossDB)
	if err != nil {
		return sdict.SDict{}, err
	}
	crossAmp, err := MMIAmplitude(wl, wl0+shift, fwhm, lossDB)
	if err != nil {
		return sdict.SDict{}, err
	}
	thru := vec.ToComplex(thruAmp)
	cross := vec.MulScalar(vec.ToComplex(crossAmp), 1i)

	return sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o3"): thru,
		sdict.P("o1", "o4"): cross,
		sdict.P("o2", "o3"): cross,
		sdict.P("o2", "o4"): thru,
	})
}
