// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// options.go - functional options for Registry construction.
//
// Contract:
//   - Options are applied in order by NewRegistry; later options win.
//   - Option constructors panic on meaningless input (a nil logger);
//     registry operations themselves never panic.
//
// Complexity: applying N options costs O(N).

package models

import "log/slog"

// RegistryOption customizes a Registry at construction.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for discovery diagnostics.
// Panics on nil.
func WithLogger(l *slog.Logger) RegistryOption {
	if l == nil {
		panic("models: WithLogger(nil)")
	}
	return func(r *Registry) {
		r.logger = l
	}
}
