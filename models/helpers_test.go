// SPDX-License-Identifier: MIT

package models_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdkmodels/models"
	"github.com/katalvlaran/pdkmodels/sdict"
)

const tol = 1e-12

// mustModel fetches a discovered model from the default catalog.
func mustModel(t testing.TB, name string) *models.Model {
	t.Helper()
	m, err := models.Default().Model(name)
	require.NoError(t, err, name)
	return m
}

// mustEval evaluates m or fails the test.
func mustEval(t testing.TB, m *models.Model, wl []float64, p models.Params) sdict.SDict {
	t.Helper()
	s, err := m.Eval(wl, p)
	require.NoError(t, err, m.String())
	return s
}

// coeff returns S(a,b) or fails the test when the pair is absent.
func coeff(t testing.TB, s sdict.SDict, a, b sdict.Port) []complex128 {
	t.Helper()
	v, ok := s.Get(a, b)
	require.True(t, ok, "missing pair (%s,%s)", a, b)
	return v
}

// near reports |x-y| <= tol.
func near(x, y complex128) bool {
	return cmplx.Abs(x-y) <= tol
}
