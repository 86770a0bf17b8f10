// SPDX-License-Identifier: MIT

// Package sdict implements the scattering-parameter record consumed by circuit
// solvers: a mapping from an unordered pair of ports to a complex coefficient
// per wavelength sample.
//
// Reciprocity:
//
//	A photonic passive device is reciprocal, S(a,b) == S(b,a). Reciprocal
//	stores every unordered pair exactly once under a canonical key, so the
//	reverse lookup is not a second copy that could drift. Supplying both
//	orientations is allowed only when they carry identical data; anything
//	else is ErrReciprocityConflict.
//
// Immutability:
//
//	An SDict copies its inputs on construction and copies again on Get, so
//	a record can be shared across goroutines and cached freely.
//
// Quick use:
//
//	s, err := sdict.Reciprocal(map[sdict.Pair][]complex128{
//		{A: "o1", B: "o2"}: {1, 1, 1},
//	})
//	t, _ := s.Get("o2", "o1") // same data as (o1,o2)
//
// Dense view:
//
//	Matrix(i, ports) materialises the N×N S-matrix at wavelength index i for
//	solvers that work on dense matrices. Missing pairs are zero.
package sdict
