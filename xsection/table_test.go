// SPDX-License-Identifier: MIT

package xsection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/xsection"
)

// TestDefault_SixCrossSections pins the embedded table contents.
func TestDefault_SixCrossSections(t *testing.T) {
	names := xsection.Default().Names()
	assert.Equal(t, []string{"xs_sc", "xs_so", "xs_rc", "xs_ro", "xs_nc", "xs_no"}, names)

	for _, n := range names {
		xs, err := xsection.Lookup(n)
		require.NoError(t, err, n)
		assert.Equal(t, 2.4, xs.Neff, n)
		assert.Equal(t, 4.2, xs.Ng, n)
		switch xs.Band {
		case xsection.BandO:
			assert.Equal(t, 1.31, xs.WL0, n)
			assert.True(t, strings.HasSuffix(n, "o"), n)
		case xsection.BandC:
			assert.Equal(t, 1.55, xs.WL0, n)
			assert.True(t, strings.HasSuffix(n, "c"), n)
		default:
			t.Fatalf("%s: unexpected band %q", n, xs.Band)
		}
	}
}

// TestCheck_CanonicalAndAliases resolves names and aliases.
func TestCheck_CanonicalAndAliases(t *testing.T) {
	cases := map[string]string{
		"xs_sc":     "xs_sc",
		"strip":     "xs_sc",
		"rib_o":     "xs_ro",
		"nitride":   "xs_nc",
		"nitride_o": "xs_no",
	}
	for in, want := range cases {
		got, err := xsection.Check(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestCheck_Invalid echoes the offending identifier.
func TestCheck_Invalid(t *testing.T) {
	for _, id := range []string{"xs_bogus", "", "XS_SC"} {
		_, err := xsection.Check(id)
		require.ErrorIs(t, err, xsection.ErrInvalidCrossSection, id)
		assert.Contains(t, err.Error(), `"`+id+`"`)
	}
}

// TestLoad_Validation rejects malformed tables with ErrInvalidTable.
func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		hint string
	}{
		{"not yaml", "cross_sections: [", ""},
		{"empty", "cross_sections: []", "CrossSections"},
		{"bad prefix", `
cross_sections:
  - {name: sc, material: silicon, geometry: strip, band: c, wl0: 1.55, neff: 2.4, ng: 4.2, width: 0.45}
`, "Name"},
		{"bad band", `
cross_sections:
  - {name: xs_sl, material: silicon, geometry: strip, band: l, wl0: 1.6, neff: 2.4, ng: 4.2, width: 0.45}
`, "Band"},
		{"non-positive neff", `
cross_sections:
  - {name: xs_sc, material: silicon, geometry: strip, band: c, wl0: 1.55, neff: 0, ng: 4.2, width: 0.45}
`, "Neff"},
		{"duplicate alias", `
cross_sections:
  - {name: xs_sc, material: silicon, geometry: strip, band: c, wl0: 1.55, neff: 2.4, ng: 4.2, width: 0.45, aliases: [wg]}
  - {name: xs_rc, material: silicon, geometry: rib, band: c, wl0: 1.55, neff: 2.4, ng: 4.2, width: 0.45, aliases: [wg]}
`, `"wg"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := xsection.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, xsection.ErrInvalidTable)
			if tc.hint != "" {
				assert.Contains(t, err.Error(), tc.hint)
			}
		})
	}
}

// TestLoad_Custom accepts a minimal valid table and keeps aliases private.
func TestLoad_Custom(t *testing.T) {
	tbl, err := xsection.Load(strings.NewReader(`
cross_sections:
  - name: xs_sc
    material: silicon
    geometry: strip
    band: c
    wl0: 1.55
    neff: 2.44
    ng: 4.19
    width: 0.5
    aliases: [wg]
`))
	require.NoError(t, err)

	xs, err := tbl.Lookup("wg")
	require.NoError(t, err)
	assert.Equal(t, "xs_sc", xs.Name)
	assert.Equal(t, 2.44, xs.Neff)

	xs.Aliases[0] = "mutated"
	again, _ := tbl.Lookup("xs_sc")
	assert.Equal(t, []string{"wg"}, again.Aliases)

	_, err = tbl.Check("xs_so")
	assert.ErrorIs(t, err, xsection.ErrInvalidCrossSection)
}
