// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// errors.go - sentinel errors for the models package.
//
// Error policy:
//   - Callers branch with errors.Is; messages carry the model/parameter name
//     through %w wrapping at the failing call.
//   - Evaluation never panics. Catalog construction (MustSpecialize,
//     NewGenerator, MustRegister) panics on programmer error only.
//   - Physically meaningless inputs (negative bandwidth, zero wavelength) are
//     not validated here; NaN/Inf propagate to the caller.

package models

import (
	"errors"

	"github.com/katalvlaran/pdkmodels/xsection"
)

var (
	// ErrInvalidCrossSection is returned by the straight dispatcher for an
	// identifier the technology table does not know. Same sentinel as
	// xsection.ErrInvalidCrossSection.
	ErrInvalidCrossSection = xsection.ErrInvalidCrossSection

	// ErrUnknownParam indicates a keyword the generator does not accept.
	ErrUnknownParam = errors.New("models: unknown parameter")

	// ErrParamType indicates a keyword value of the wrong type
	// (e.g. a string where a number is expected).
	ErrParamType = errors.New("models: parameter has wrong type")

	// ErrDuplicatePort indicates repeated port names in an N-port request.
	ErrDuplicatePort = errors.New("models: duplicate port name")

	// ErrDuplicateName indicates a second registration under the same name.
	ErrDuplicateName = errors.New("models: name already registered")

	// ErrInvalidName indicates an empty registration name.
	ErrInvalidName = errors.New("models: invalid registry name")

	// ErrUnknownModel indicates a registry lookup that found no S-parameter
	// model under the name.
	ErrUnknownModel = errors.New("models: unknown model")
)
