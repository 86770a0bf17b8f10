// SPDX-License-Identifier: MIT

// Package xsection is the technology table: the set of waveguide
// cross-sections (material × geometry × band) the model catalog knows about,
// with the physical constants each straight-waveguide variant is built from.
//
// The default table is embedded (technology.yaml) and parsed once on first
// use. Custom tables can be loaded with Load and must pass the same
// validation: every entry needs a name starting with "xs_", a band of "o" or
// "c", and strictly positive wl0/neff/ng/width. Names and aliases must be
// unique across the table.
//
// Check canonicalizes an identifier (name or alias) and fails with
// ErrInvalidCrossSection, echoing the offending value, for anything else:
//
//	id, err := xsection.Check("strip") // "xs_sc", nil
//	_, err = xsection.Check("xs_bogus") // errors.Is(err, ErrInvalidCrossSection)
package xsection
