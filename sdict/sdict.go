// SPDX-License-Identifier: MIT
// Package: pdkmodels/sdict
//
// sdict.go - the immutable reciprocal S-parameter record and its builder.
//
// Invariants:
//   - Every stored key is canonical (A <= B); a pair is stored at most once.
//   - All coefficient slices have the same length n >= 1.
//   - No method hands out internal slices.

package sdict

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pdkmodels/vec"
)

// SDict is an immutable reciprocal scattering-parameter record.
// The zero value is an empty record (NumPairs() == 0, Len() == 0).
type SDict struct {
	data map[Pair][]complex128 // canonical pair -> coefficients
	n    int                   // samples per coefficient array
}

// Reciprocal builds a record from pair -> coefficients. Each unordered pair
// is stored once; supplying both (a,b) and (b,a) is accepted only when the
// arrays are identical.
//
// Errors (checked in this order, pairs visited in canonical order):
//   - ErrEmpty               - no entries, or zero-length coefficients;
//   - ErrEmptyPort           - a pair with an empty port name;
//   - ErrLengthMismatch      - arrays of different length;
//   - ErrReciprocityConflict - (a,b) and (b,a) disagree.
//
// Complexity: O(P log P + P*n) for P pairs of n samples.
func Reciprocal(entries map[Pair][]complex128) (SDict, error) {
	if len(entries) == 0 {
		return SDict{}, fmt.Errorf("Reciprocal: %w", ErrEmpty)
	}

	keys := make([]Pair, 0, len(entries))
	for p := range entries {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, comparePairs)

	n := -1
	data := make(map[Pair][]complex128, len(keys))
	for _, p := range keys {
		if p.A == "" || p.B == "" {
			return SDict{}, fmt.Errorf("Reciprocal %s: %w", p, ErrEmptyPort)
		}
		v := entries[p]
		if n < 0 {
			n = len(v)
			if n == 0 {
				return SDict{}, fmt.Errorf("Reciprocal %s: %w", p, ErrEmpty)
			}
		}
		if len(v) != n {
			return SDict{}, fmt.Errorf("Reciprocal %s: len %d, want %d: %w", p, len(v), n, ErrLengthMismatch)
		}

		key := p.Canonical()
		if prev, ok := data[key]; ok {
			if !slices.Equal(prev, v) {
				return SDict{}, fmt.Errorf("Reciprocal %s: %w", key, ErrReciprocityConflict)
			}
			continue
		}
		data[key] = slices.Clone(v)
	}

	return SDict{data: data, n: n}, nil
}

// MustReciprocal is Reciprocal for hand-written literals; it panics on error.
func MustReciprocal(entries map[Pair][]complex128) SDict {
	s, err := Reciprocal(entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of wavelength samples per coefficient.
func (s SDict) Len() int {
	return s.n
}

// NumPairs returns the number of stored unordered pairs.
func (s SDict) NumPairs() int {
	return len(s.data)
}

// Has reports whether (a,b) or (b,a) is stored.
func (s SDict) Has(a, b Port) bool {
	_, ok := s.data[P(a, b).Canonical()]
	return ok
}

// Get returns a copy of the coefficients for (a,b); (b,a) yields the same data.
func (s SDict) Get(a, b Port) ([]complex128, bool) {
	v, ok := s.data[P(a, b).Canonical()]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// At returns S(a,b) at wavelength index i. Pairs absent from the record are
// zero, as in the dense S-matrix.
func (s SDict) At(a, b Port, i int) (complex128, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("At(%s,%s,%d): %w", a, b, i, ErrIndexOutOfRange)
	}
	v, ok := s.data[P(a, b).Canonical()]
	if !ok {
		return 0, nil
	}
	return v[i], nil
}

// Pairs returns the stored canonical pairs in sorted order.
func (s SDict) Pairs() []Pair {
	out := make([]Pair, 0, len(s.data))
	for p := range s.data {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePairs)

	return out
}

// Ports returns every port that appears in some pair, sorted.
func (s SDict) Ports() []Port {
	seen := make(map[Port]struct{}, 2*len(s.data))
	for p := range s.data {
		seen[p.A] = struct{}{}
		seen[p.B] = struct{}{}
	}
	out := make([]Port, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)

	return out
}

// AllClose reports whether both records store the same pairs, the same
// number of samples and coefficients within tol in modulus (vec.AllClose).
func (s SDict) AllClose(o SDict, tol float64) bool {
	if s.n != o.n || len(s.data) != len(o.data) {
		return false
	}
	for p, v := range s.data {
		w, ok := o.data[p]
		if !ok || !vec.AllClose(v, w, tol) {
			return false
		}
	}
	return true
}
