// SPDX-License-Identifier: MIT

package vec

import "errors"

var (
	// ErrEmpty is returned by reductions (Max) over an empty slice.
	ErrEmpty = errors.New("vec: empty input")

	// ErrBadLength is returned when a requested axis length is < 1.
	ErrBadLength = errors.New("vec: length must be >= 1")
)
