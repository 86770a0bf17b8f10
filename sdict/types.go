// SPDX-License-Identifier: MIT
// Package: pdkmodels/sdict
//
// types.go - port names and port pairs.
//
// Contract:
//   - Pair is ordered as written; Canonical orders it (A <= B) so (a,b) and
//     (b,a) share one storage key.
//   - A self pair (a,a) is a reflection term.

package sdict

import "cmp"

// Port names a physical terminal of a component, e.g. "o1".
type Port string

// Pair is a (possibly ordered) pair of ports. Records treat it as unordered.
type Pair struct {
	A Port
	B Port
}

// P is shorthand for Pair{A: a, B: b}.
func P(a, b Port) Pair {
	return Pair{A: a, B: b}
}

// Reverse returns (B, A).
func (p Pair) Reverse() Pair {
	return Pair{A: p.B, B: p.A}
}

// Canonical returns the pair with A <= B lexicographically; it is the key
// a record stores the pair under.
func (p Pair) Canonical() Pair {
	if p.B < p.A {
		return p.Reverse()
	}
	return p
}

// IsSelf reports whether the pair is a reflection term (a, a).
func (p Pair) IsSelf() bool {
	return p.A == p.B
}

// String renders "(a,b)".
func (p Pair) String() string {
	return "(" + string(p.A) + "," + string(p.B) + ")"
}

func comparePairs(x, y Pair) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}
