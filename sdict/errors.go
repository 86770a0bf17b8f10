// SPDX-License-Identifier: MIT
// Package: pdkmodels/sdict
//
// errors.go - sentinel errors for the sdict package.
//
// Error policy:
//   - Only package-level sentinels; callers branch with errors.Is.
//   - Context (pair, index, lengths) is attached with %w at the call site.

package sdict

import "errors"

var (
	// ErrEmpty indicates a record with no pairs or zero-length coefficients.
	ErrEmpty = errors.New("sdict: empty record")

	// ErrEmptyPort indicates a pair with an empty port name.
	ErrEmptyPort = errors.New("sdict: empty port name")

	// ErrLengthMismatch indicates coefficient arrays of different lengths.
	ErrLengthMismatch = errors.New("sdict: coefficient length mismatch")

	// ErrReciprocityConflict indicates (a,b) and (b,a) were both supplied
	// with different data.
	ErrReciprocityConflict = errors.New("sdict: reciprocal entries disagree")

	// ErrUnknownPort indicates a port that does not appear in the record.
	ErrUnknownPort = errors.New("sdict: unknown port")

	// ErrIndexOutOfRange indicates a wavelength index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sdict: wavelength index out of range")
)
