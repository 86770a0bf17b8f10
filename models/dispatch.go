// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// dispatch.go - the cross-section aware "straight" entry point.
//
// Contract:
//   - cross_section accepts a canonical name (xs_sc) or a table alias (strip).
//   - The result equals evaluating the matching straight_<tech> variant
//     directly with the same length and loss.
//   - Unknown identifiers fail with ErrInvalidCrossSection naming the id;
//     nothing is evaluated.
//
// Complexity: one table lookup plus the waveguide formula, O(n) in samples.

package models

import (
	"fmt"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/xsection"
)

// Straight routes a straight-waveguide request to the variant of its
// cross-section. The identifier is canonicalized by the technology table;
// aliases are accepted.
var Straight = NewGenerator("straight", KindSDict, WavelengthC, Params{
	"length":        10.0,
	"loss":          0.0,
	"cross_section": "xs_sc",
}, evalStraight)

func evalStraight(wl []float64, p Params) (sdict.SDict, error) {
	xs, err := p.Text("cross_section")
	if err != nil {
		return sdict.SDict{}, err
	}
	v, err := p.floats("length", "loss")
	if err != nil {
		return sdict.SDict{}, err
	}

	m, err := straightVariant(xs)
	if err != nil {
		return sdict.SDict{}, err
	}

	return m.Eval(wl, Params{"length": v[0], "loss": v[1]})
}

// straightVariant maps a cross-section identifier to its catalog entry.
func straightVariant(id string) (*Model, error) {
	canonical, err := xsection.Check(id)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case "xs_sc":
		return straightSC, nil
	case "xs_so":
		return straightSO, nil
	case "xs_rc":
		return straightRC, nil
	case "xs_ro":
		return straightRO, nil
	case "xs_nc":
		return straightNC, nil
	case "xs_no":
		return straightNO, nil
	default:
		return nil, fmt.Errorf("%w: got %q (no straight variant)", ErrInvalidCrossSection, id)
	}
}
