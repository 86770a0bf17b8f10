// SPDX-License-Identifier: MIT

package sdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/sdict"
)

// TestReciprocal_ReverseLookup verifies S(a,b) == S(b,a) from a single entry.
func TestReciprocal_ReverseLookup(t *testing.T) {
	s, err := sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o2", "o1"): {1, 2i},
	})
	require.NoError(t, err)

	fwd, ok := s.Get("o1", "o2")
	require.True(t, ok)
	rev, ok := s.Get("o2", "o1")
	require.True(t, ok)
	assert.Equal(t, fwd, rev)
	assert.Equal(t, []sdict.Pair{sdict.P("o1", "o2")}, s.Pairs(), "stored once under the canonical key")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.NumPairs())
}

// TestReciprocal_BothOrientations accepts identical data and rejects disagreement.
func TestReciprocal_BothOrientations(t *testing.T) {
	s, err := sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o2"): {0.5},
		sdict.P("o2", "o1"): {0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.NumPairs())

	_, err = sdict.Reciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o2"): {0.5},
		sdict.P("o2", "o1"): {0.6},
	})
	assert.ErrorIs(t, err, sdict.ErrReciprocityConflict)
}

// TestReciprocal_Validation walks every rejection class.
func TestReciprocal_Validation(t *testing.T) {
	cases := []struct {
		name    string
		entries map[sdict.Pair][]complex128
		want    error
	}{
		{"nil map", nil, sdict.ErrEmpty},
		{"zero length", map[sdict.Pair][]complex128{sdict.P("a", "b"): {}}, sdict.ErrEmpty},
		{"empty port", map[sdict.Pair][]complex128{sdict.P("", "b"): {1}}, sdict.ErrEmptyPort},
		{"length mismatch", map[sdict.Pair][]complex128{
			sdict.P("a", "b"): {1, 2},
			sdict.P("a", "c"): {1},
		}, sdict.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sdict.Reciprocal(tc.entries)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestReciprocal_CopiesInput ensures later mutation of the caller's slice
// does not leak into the record, and Get hands out copies.
func TestReciprocal_CopiesInput(t *testing.T) {
	v := []complex128{1, 1}
	s := sdict.MustReciprocal(map[sdict.Pair][]complex128{sdict.P("o1", "o2"): v})
	v[0] = 99

	got, _ := s.Get("o1", "o2")
	assert.Equal(t, complex128(1), got[0])
	got[1] = 42
	again, _ := s.Get("o1", "o2")
	assert.Equal(t, complex128(1), again[1])
}

// TestReciprocal_SelfTerms keeps reflection pairs (a,a).
func TestReciprocal_SelfTerms(t *testing.T) {
	s := sdict.MustReciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o1"): {0.1},
		sdict.P("o1", "o2"): {0.9},
	})
	assert.True(t, s.Has("o1", "o1"))
	assert.Equal(t, []sdict.Port{"o1", "o2"}, s.Ports())
	assert.True(t, sdict.P("o1", "o1").IsSelf())
}

// TestAt_MissingPairIsZero mirrors the dense S-matrix convention.
func TestAt_MissingPairIsZero(t *testing.T) {
	s := sdict.MustReciprocal(map[sdict.Pair][]complex128{sdict.P("o1", "o3"): {1, 2}})

	v, err := s.At("o3", "o1", 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(2), v)

	v, err = s.At("o1", "o2", 0)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = s.At("o1", "o3", 2)
	assert.ErrorIs(t, err, sdict.ErrIndexOutOfRange)
}

// TestMatrix_Symmetric checks the dense view and its error paths.
func TestMatrix_Symmetric(t *testing.T) {
	s := sdict.MustReciprocal(map[sdict.Pair][]complex128{
		sdict.P("o1", "o4"): {0.7},
		sdict.P("o1", "o3"): {0.7i},
		sdict.P("o2", "o3"): {0.7},
	})

	m, err := s.Matrix(0, nil)
	require.NoError(t, err)
	require.Len(t, m, 4)
	for r := range m {
		for c := range m {
			assert.Equal(t, m[r][c], m[c][r], "S[%d][%d]", r, c)
		}
	}
	assert.Equal(t, complex128(0.7i), m[0][2])
	assert.Zero(t, m[0][1])

	_, err = s.Matrix(1, nil)
	assert.ErrorIs(t, err, sdict.ErrIndexOutOfRange)

	_, err = s.Matrix(0, []sdict.Port{"o1", "o2", "o3"})
	assert.ErrorIs(t, err, sdict.ErrUnknownPort)
}

// TestAllClose compares records with tolerance.
func TestAllClose(t *testing.T) {
	a := sdict.MustReciprocal(map[sdict.Pair][]complex128{sdict.P("o1", "o2"): {1}})
	b := sdict.MustReciprocal(map[sdict.Pair][]complex128{sdict.P("o2", "o1"): {1 + 1e-14}})
	c := sdict.MustReciprocal(map[sdict.Pair][]complex128{sdict.P("o1", "o3"): {1}})

	assert.True(t, a.AllClose(b, 1e-12))
	assert.False(t, a.AllClose(c, 1e-12))
	assert.False(t, a.AllClose(sdict.SDict{}, 1e-12))
}

// TestZeroValue is an empty record.
func TestZeroValue(t *testing.T) {
	var s sdict.SDict
	assert.Zero(t, s.Len())
	assert.Zero(t, s.NumPairs())
	assert.Empty(t, s.Pairs())
	_, ok := s.Get("o1", "o2")
	assert.False(t, ok)
}
