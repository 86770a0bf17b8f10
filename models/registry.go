// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// registry.go - append-only name → callable catalog and model discovery.
//
// Discovery rule: an entry is a model iff it is a *Model (or *Generator)
// whose base generator declares KindSDict. Anything else registered under
// a name (factories, envelopes, nil models) is skipped silently, never an
// error. Models() returns a snapshot; later registrations do not show up
// in maps already returned.

package models

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/pdkmodels/sdict"
)

// Registry is an append-only name → callable catalog. Safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
	logger  *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]any),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the registry populated with the built-in catalog.
func Default() *Registry {
	return defaultRegistry
}

// GetModels returns every S-parameter model of the built-in catalog by name.
func GetModels() map[string]*Model {
	return defaultRegistry.Models()
}

// Register adds v under name. v may be a *Model, a *Generator or any other
// value; only models are discoverable. Names are never replaced.
func (r *Registry) Register(name string, v any) error {
	if name == "" {
		return fmt.Errorf("Register: %w", ErrInvalidName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateName)
	}
	r.entries[name] = v

	return nil
}

// MustRegister is Register for catalog construction; it panics on error.
func (r *Registry) MustRegister(name string, v any) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

// Lookup returns the raw registered value.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// Names returns every registered name, models or not, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Models returns a snapshot of the discoverable models.
func (r *Registry) Models() map[string]*Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Model, len(r.entries))
	for name, v := range r.entries {
		m, reason := discover(v)
		if m == nil {
			r.logger.LogAttrs(context.Background(), slog.LevelDebug, "models: skipping registry entry",
				slog.String("name", name),
				slog.String("reason", reason),
				slog.String("type", fmt.Sprintf("%T", v)))
			continue
		}
		out[name] = m
	}
	return out
}

// Model returns the discoverable model registered under name.
func (r *Registry) Model(name string) (*Model, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("Model(%q): %w", name, ErrUnknownModel)
	}
	m, reason := discover(v)
	if m == nil {
		return nil, fmt.Errorf("Model(%q): %s: %w", name, reason, ErrUnknownModel)
	}
	return m, nil
}

// Eval looks up name and evaluates it.
func (r *Registry) Eval(name string, wl []float64, p Params) (sdict.SDict, error) {
	m, err := r.Model(name)
	if err != nil {
		return sdict.SDict{}, err
	}
	return m.Eval(wl, p)
}

// discover returns v as a model, or nil and the reason it is not one.
func discover(v any) (*Model, string) {
	var m *Model
	switch x := v.(type) {
	case *Model:
		m = x
	case *Generator:
		if x == nil {
			return nil, "nil generator"
		}
		m = x.Model()
	default:
		return nil, "not a model"
	}
	base := m.Base()
	if base == nil {
		return nil, "no underlying generator"
	}
	if base.Kind() != KindSDict {
		return nil, "result kind " + base.Kind().String()
	}
	return m, ""
}
