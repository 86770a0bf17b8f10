// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// crossing.go - ideal 4-port waveguide crossing.
//
// Contract:
//   - Exactly two entries, (o1,o3) and (o2,o4), both 1 at every sample.
//   - No reflection and no coupling between the arms: (o1,o2), (o1,o4)
//     and the diagonal are absent, which reads as 0.
//
// Complexity: O(n) in samples.

package models

import (
	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// Crossing is an ideal waveguide crossing: unit transmission straight
// through (o1,o3) and (o2,o4), no coupling between the arms.
var Crossing = NewGenerator("crossing", KindSDict, 1.5, Params{}, func(wl []float64, _ Params) (sdict.SDict, error) {
	one := vec.Fill(len(wl), 1)
	return sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o3"): one,
		sdict.P("o2", "o4"): one,
	})
})
