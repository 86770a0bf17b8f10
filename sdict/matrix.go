// SPDX-License-Identifier: MIT
// Package: pdkmodels/sdict
//
// matrix.go - dense N×N S-matrix view of a record at one wavelength sample.

package sdict

import "fmt"

// Matrix returns the dense S-matrix at wavelength index i with rows and
// columns ordered as ports. A nil ports slice means s.Ports().
// The result is symmetric: m[r][c] == m[c][r].
//
// Errors: ErrIndexOutOfRange for a bad i, ErrUnknownPort when an explicit
// port list omits a port the record uses.
// Complexity: O(N^2 + P).
func (s SDict) Matrix(i int, ports []Port) ([][]complex128, error) {
	if i < 0 || i >= s.n {
		return nil, fmt.Errorf("Matrix(%d): %w", i, ErrIndexOutOfRange)
	}
	if ports == nil {
		ports = s.Ports()
	}

	index := make(map[Port]int, len(ports))
	for k, p := range ports {
		index[p] = k
	}

	m := make([][]complex128, len(ports))
	for r := range m {
		m[r] = make([]complex128, len(ports))
	}

	for p, v := range s.data {
		r, okA := index[p.A]
		c, okB := index[p.B]
		if !okA || !okB {
			return nil, fmt.Errorf("Matrix: pair %s: %w", p, ErrUnknownPort)
		}
		m[r][c] = v[i]
		m[c][r] = v[i]
	}

	return m, nil
}
