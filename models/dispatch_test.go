// SPDX-License-Identifier: MIT

package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/models"
)

// TestStraight_Dispatch: every identifier and alias gives exactly what the
// named variant gives.
func TestStraight_Dispatch(t *testing.T) {
	wl := []float64{1.3, 1.31, 1.55, 1.6}
	call := models.Params{"length": 25, "loss": 0.01}

	cases := []struct {
		id, variant string
	}{
		{"xs_sc", "straight_sc"},
		{"xs_so", "straight_so"},
		{"xs_rc", "straight_rc"},
		{"xs_ro", "straight_ro"},
		{"xs_nc", "straight_nc"},
		{"xs_no", "straight_no"},
		{"strip", "straight_sc"},
		{"rib_o", "straight_ro"},
		{"nitride", "straight_nc"},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			p := call.Clone()
			p["cross_section"] = tc.id
			got := mustEval(t, models.Straight.Model(), wl, p)
			want := mustEval(t, mustModel(t, tc.variant), wl, call)
			assert.True(t, got.AllClose(want, 0))
		})
	}
}

// TestStraight_DefaultCrossSection routes to xs_sc.
func TestStraight_DefaultCrossSection(t *testing.T) {
	got := mustEval(t, models.Straight.Model(), nil, nil)
	want := mustEval(t, mustModel(t, "straight_sc"), nil, models.Params{"length": 10})
	assert.True(t, got.AllClose(want, 0))
}

// TestStraight_InvalidCrossSection names the offending identifier.
func TestStraight_InvalidCrossSection(t *testing.T) {
	_, err := models.Straight.Model().Eval(nil, models.Params{"cross_section": "xs_bogus"})
	require.ErrorIs(t, err, models.ErrInvalidCrossSection)
	assert.Contains(t, err.Error(), "xs_bogus")

	_, err = models.Straight.Model().Eval(nil, models.Params{"cross_section": 3})
	assert.ErrorIs(t, err, models.ErrParamType)

	_, err = models.Straight.Model().Eval(nil, models.Params{"neff": 2})
	assert.ErrorIs(t, err, models.ErrUnknownParam)
}

// TestTransitions: tapers are straights of fixed length.
func TestTransitions(t *testing.T) {
	wl := []float64{1.55}
	cases := []struct {
		name   string
		length float64
	}{
		{"trans_sc_rc10", 10},
		{"trans_sc_rc20", 20},
		{"trans_sc_rc50", 50},
	}
	for _, tc := range cases {
		m := mustModel(t, tc.name)
		assert.Same(t, models.Straight, m.Base())
		got := mustEval(t, m, wl, nil)
		want := mustEval(t, models.Straight.Model(), wl, models.Params{"length": tc.length})
		assert.True(t, got.AllClose(want, 0), tc.name)
	}
	assert.Same(t, mustModel(t, "taper"), mustModel(t, "taper_cross_section"))
}
