// SPDX-License-Identifier: MIT

package models_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/models"
	"github.com/katalvlaran/pdkmodels/sdict"
)

// TestNPort_Memoized checks that the same port tuple yields the same model
// and that any change in names or order yields a different one.
func TestNPort_Memoized(t *testing.T) {
	a, err := models.NPort2("in", "out")
	require.NoError(t, err)
	b, err := models.NPort2("in", "out")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := models.NPort2("out", "in")
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	d, err := models.NPort3("in", "out", "aux")
	require.NoError(t, err)
	assert.NotSame(t, a, d)
	assert.Equal(t, models.KindSDict, d.Base().Kind())
}

// TestNPort_Concurrent races many callers on one tuple.
func TestNPort_Concurrent(t *testing.T) {
	const workers = 32
	got := make([]*models.Model, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := models.NPort4("c1", "c2", "c3", "c4")
			if err == nil {
				got[i] = m
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.NotNil(t, got[i])
		assert.Same(t, got[0], got[i])
	}
}

// TestNPort_InvalidPorts rejects duplicates and empty names.
func TestNPort_InvalidPorts(t *testing.T) {
	_, err := models.NPort2("a", "a")
	assert.ErrorIs(t, err, models.ErrDuplicatePort)

	_, err = models.NPort4("a", "b", "c", "a")
	assert.ErrorIs(t, err, models.ErrDuplicatePort)

	_, err = models.NPort3("a", "", "c")
	assert.ErrorIs(t, err, sdict.ErrEmptyPort)
}

// TestNPort_Values checks the coefficient tables.
func TestNPort_Values(t *testing.T) {
	wl := []float64{1.3, 1.5, 1.6}
	h := complex(1/math.Sqrt2, 0)

	m2, err := models.NPort2("a", "b")
	require.NoError(t, err)
	s := mustEval(t, m2, wl, nil)
	assert.Equal(t, 1, s.NumPairs())
	assert.Equal(t, []complex128{1, 1, 1}, coeff(t, s, "b", "a"))

	m3, err := models.NPort3("a", "b", "c")
	require.NoError(t, err)
	s = mustEval(t, m3, wl, nil)
	assert.Equal(t, 2, s.NumPairs())
	for _, v := range coeff(t, s, "a", "c") {
		assert.True(t, near(h, v))
	}
	assert.False(t, s.Has("b", "c"))

	m4, err := models.NPort4("a", "b", "c", "d")
	require.NoError(t, err)
	s = mustEval(t, m4, wl, nil)
	assert.Equal(t, 4, s.NumPairs())
	for i := range wl {
		assert.True(t, near(h, coeff(t, s, "a", "d")[i]))
		assert.True(t, near(h, coeff(t, s, "b", "c")[i]))
		assert.True(t, near(1i*h, coeff(t, s, "a", "c")[i]))
		assert.True(t, near(1i*h, coeff(t, s, "d", "b")[i]))
	}
	assert.False(t, s.Has("a", "b"))
	assert.False(t, s.Has("c", "d"))
}

// TestNPort_DefaultWavelength evaluates at 1.5 µm when wl is empty.
func TestNPort_DefaultWavelength(t *testing.T) {
	m, err := models.NPort2("x", "y")
	require.NoError(t, err)
	assert.Equal(t, 1.5, m.Base().DefaultWavelength())
	assert.Equal(t, 1, mustEval(t, m, nil, nil).Len())

	_, err = m.Eval(nil, models.Params{"length": 1})
	assert.ErrorIs(t, err, models.ErrUnknownParam)
}
