// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// catalog.go - named process variants of the generators.
//
// Naming: <component>_<tech><band>, tech ∈ {s: silicon strip, r: silicon rib,
// n: silicon nitride}, band ∈ {o: 1.31 µm, c: 1.55 µm}. Variants that share
// a formula and defaults are registered as the same *Model value.

package models

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pdkmodels/xsection"
)

// Band centre wavelengths (µm) and the nanometre unit.
const (
	WavelengthO = 1.31
	WavelengthC = 1.55

	nm = 1e-3
)

// technologies in catalog order; the last letter is the band.
var technologies = []string{"sc", "so", "rc", "ro", "nc", "no"}

var (
	straightSC = straightFor("xs_sc")
	straightSO = straightFor("xs_so")
	straightRC = straightFor("xs_rc")
	straightRO = straightFor("xs_ro")
	straightNC = straightFor("xs_nc")
	straightNO = straightFor("xs_no")

	bendEuler = Bend.Model().MustSpecialize(Params{"loss": 0.03})

	taper = Straight.Model()

	mmi1x2O = MMI1x2.Model().MustSpecialize(Params{"wl0": WavelengthO})
	mmi1x2C = MMI1x2.Model().MustSpecialize(Params{"wl0": WavelengthC})
	mmi2x2O = MMI2x2.Model().MustSpecialize(Params{"wl0": WavelengthO})
	mmi2x2C = MMI2x2.Model().MustSpecialize(Params{"wl0": WavelengthC})

	coupler  = MMI2x2.Model()
	couplerO = coupler.MustSpecialize(Params{"wl0": WavelengthO})
	couplerC = coupler.MustSpecialize(Params{"wl0": WavelengthC})

	gcRectangularO = GCRectangular.Model().MustSpecialize(Params{"loss": 6, "bandwidth": 35 * nm, "wavelength": WavelengthO})
	gcRectangularC = GCRectangular.Model().MustSpecialize(Params{"loss": 6, "bandwidth": 35 * nm, "wavelength": WavelengthC})

	gcElliptical  = GCRectangular.Model()
	gcEllipticalO = gcElliptical.MustSpecialize(Params{"loss": 6, "bandwidth": 35 * nm, "wavelength": WavelengthO})
	gcEllipticalC = gcElliptical.MustSpecialize(Params{"loss": 6, "bandwidth": 35 * nm, "wavelength": WavelengthC})
)

// straightFor binds the waveguide generator to a technology-table row.
func straightFor(id string) *Model {
	xs, err := xsection.Lookup(id)
	if err != nil {
		panic(err)
	}
	return Waveguide.Model().MustSpecialize(Params{"wl0": xs.WL0, "neff": xs.Neff, "ng": xs.Ng})
}

// byBand picks the O- or C-band model for a technology suffix.
func byBand(tech string, o, c *Model) *Model {
	if tech[len(tech)-1] == 'o' {
		return o
	}
	return c
}

// RegisterCatalog adds every generator, variant and helper callable to r.
// Helpers that are not models (N-port factories, the MMI envelope) are
// registered too; discovery skips them. Names already present in r are
// reported as ErrDuplicateName and left untouched.
func RegisterCatalog(r *Registry) error {
	var errs []error
	add := func(name string, v any) {
		if err := r.Register(name, v); err != nil {
			errs = append(errs, err)
		}
	}

	// generators
	add("waveguide", Waveguide)
	add("bend", Bend)
	add("grating_coupler", GratingCoupler)
	add("straight", Straight)
	add("mmi1x2", MMI1x2)
	add("mmi2x2", MMI2x2)
	add("gc_rectangular", GCRectangular)
	add("crossing", Crossing)

	// straights
	straights := map[string]*Model{
		"sc": straightSC, "so": straightSO,
		"rc": straightRC, "ro": straightRO,
		"nc": straightNC, "no": straightNO,
	}
	for _, tech := range technologies {
		add("straight_"+tech, straights[tech])
	}

	// bends
	add("bend_s", Straight.Model())
	add("bend_euler", bendEuler)
	for _, tech := range technologies {
		add("bend_"+tech, bendEuler.MustSpecialize(Params{"loss": 0.03}))
	}

	// transitions
	add("taper", taper)
	add("taper_cross_section", taper)
	for _, l := range []int{10, 20, 50} {
		add(fmt.Sprintf("trans_sc_rc%d", l), taper.MustSpecialize(Params{"length": l}))
	}

	// MMIs and evanescent couplers
	add("mmi1x2_o", mmi1x2O)
	add("mmi1x2_c", mmi1x2C)
	add("mmi2x2_o", mmi2x2O)
	add("mmi2x2_c", mmi2x2C)
	add("coupler", coupler)
	add("coupler_o", couplerO)
	add("coupler_c", couplerC)
	for _, tech := range technologies {
		add("mmi1x2_"+tech, byBand(tech, mmi1x2O, mmi1x2C))
		add("mmi2x2_"+tech, byBand(tech, mmi2x2O, mmi2x2C))
		add("coupler_"+tech, byBand(tech, couplerO, couplerC))
	}

	// grating couplers
	add("gc_rectangular_o", gcRectangularO)
	add("gc_rectangular_c", gcRectangularC)
	add("gc_elliptical", gcElliptical)
	add("gc_elliptical_o", gcEllipticalO)
	add("gc_elliptical_c", gcEllipticalC)
	for _, tech := range technologies {
		add("gc_rectangular_"+tech, byBand(tech, gcRectangularO, gcRectangularC))
		add("gc_elliptical_"+tech, byBand(tech, gcEllipticalO, gcEllipticalC))
	}

	// crossings
	for _, tech := range []string{"so", "rc", "sc"} {
		add("crossing_"+tech, Crossing.Model())
	}

	// helpers, not models
	add("nport2", NPort2)
	add("nport3", NPort3)
	add("nport4", NPort4)
	add("mmi_amplitude", MMIAmplitude)

	return errors.Join(errs...)
}

func init() {
	if err := RegisterCatalog(defaultRegistry); err != nil {
		panic(err)
	}
}
