// SPDX-License-Identifier: MIT

// Package models computes wavelength-dependent S-parameters for a catalog of
// integrated-photonic building blocks and exposes them by name for circuit
// solvers.
//
// What is in the catalog?
//
//	Generators    - closed-form formulas with declared keywords and defaults:
//	                waveguide, bend, straight (cross-section dispatcher),
//	                mmi1x2, mmi2x2, grating_coupler, gc_rectangular, crossing.
//	Variants      - parameter-bound specializations, one per process,
//	                waveguide width and band: straight_sc, mmi2x2_no,
//	                gc_elliptical_ro, trans_sc_rc20, ...
//	Pass-throughs - NPort2/NPort3/NPort4, ideal lossless stand-ins keyed by
//	                port names and memoized per port tuple.
//
// Discovery:
//
//	Every generator and variant registers itself into the default Registry
//	at init. GetModels returns the entries whose underlying generator
//	declares KindSDict; a specialization always points straight at its
//	generator, so binding parameters never hides the declared result.
//
// Usage:
//
//	mmi := models.GetModels()["mmi1x2_so"]
//	wl, _ := vec.Linspace(1.26, 1.36, 101)
//	s, err := mmi.Eval(wl, models.Params{"loss_dB": 0.5})
//	thru, _ := s.Get("o1", "o2")
//
// Units: wavelengths and lengths in µm, waveguide loss in dB/µm, MMI and
// grating losses in dB.
//
// Concurrency: generators and models are immutable; evaluation is pure and
// may run from any number of goroutines. The N-port memo and the registry
// are guarded by mutexes.
package models
