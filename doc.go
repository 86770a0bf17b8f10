// SPDX-License-Identifier: MIT

// Package pdkmodels is a catalog of closed-form photonic S-parameter
// models for a silicon / silicon-nitride process design kit.
//
// The module is organized as one package per concern:
//
//	vec/       - float64 and complex128 sample-vector kernels
//	sdict/     - reciprocal S-parameter records keyed by port pairs
//	xsection/  - the technology table of waveguide cross-sections
//	models/    - generators, named variants, N-port stand-ins, discovery
//	metrics/   - Prometheus series for model evaluations
//	cmd/pdkmodels - list, describe and sweep the catalog from a shell
//
// Quick start:
//
//	m := models.GetModels()["mmi1x2_so"]
//	s, err := m.Eval([]float64{1.30, 1.31, 1.32}, nil)
//	if err != nil {
//		// handle
//	}
//	t, _ := s.Get("o1", "o2")
//
// Wavelengths are in µm, lengths in µm, waveguide loss in dB/µm and
// grating/MMI losses in dB. Every record is reciprocal: S(a,b) == S(b,a).
package pdkmodels
