// SPDX-License-Identifier: MIT

package xsection

import "errors"

var (
	// ErrInvalidCrossSection indicates an identifier that is neither a
	// cross-section name nor an alias in the table.
	ErrInvalidCrossSection = errors.New("xsection: invalid cross section")

	// ErrInvalidTable indicates a technology table that failed to parse or
	// validate.
	ErrInvalidTable = errors.New("xsection: invalid technology table")
)
