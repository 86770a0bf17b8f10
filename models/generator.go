// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// generator.go - generators and their parameter-bound specializations.
//
// Design contract:
//   - A Generator owns the formula, the declared result Kind, the default
//     wavelength and the full keyword set (its defaults).
//   - A Model is a value object {base generator, parameter overrides}.
//     Specialize never nests: the result points at the same base generator
//     with merged overrides, so "underlying generator" is a field read.
//   - Both are immutable after construction and safe for concurrent use.

package models

import (
	"fmt"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// Kind is the declared result type of a generator. Discovery keeps only
// KindSDict.
type Kind uint8

const (
	// KindUnknown declares no usable result; never discovered.
	KindUnknown Kind = iota
	// KindSDict declares a reciprocal scattering-parameter record.
	KindSDict
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSDict:
		return "sdict"
	default:
		return "unknown"
	}
}

// Func evaluates a formula at wavelengths wl (µm) with fully resolved
// parameters (every accepted key present, numbers as float64).
type Func func(wl []float64, p Params) (sdict.SDict, error)

// Generator is a closed-form model with its accepted keywords and defaults.
type Generator struct {
	name      string
	kind      Kind
	defaultWL float64
	defaults  Params
	fn        Func
	model     *Model // the unspecialized model; stable pointer
}

// NewGenerator declares a generator. defaults lists every accepted keyword
// with its default value (float64 or string). It panics on a nil fn, an
// empty name, a non-positive default wavelength or an unsupported default
// type; these are catalog-construction defects.
func NewGenerator(name string, kind Kind, defaultWL float64, defaults Params, fn Func) *Generator {
	if name == "" {
		panic("models: NewGenerator: empty name")
	}
	if fn == nil {
		panic("models: NewGenerator(" + name + "): nil func")
	}
	if !(defaultWL > 0) {
		panic("models: NewGenerator(" + name + "): default wavelength must be > 0")
	}
	norm := make(Params, len(defaults))
	for k, v := range defaults {
		if s, ok := v.(string); ok {
			norm[k] = s
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			panic(fmt.Sprintf("models: NewGenerator(%s): default %q has type %T", name, k, v))
		}
		norm[k] = f
	}

	g := &Generator{name: name, kind: kind, defaultWL: defaultWL, defaults: norm, fn: fn}
	g.model = &Model{base: g, overrides: Params{}}

	return g
}

// Name returns the generator name.
func (g *Generator) Name() string { return g.name }

// Kind returns the declared result kind.
func (g *Generator) Kind() Kind { return g.kind }

// DefaultWavelength is used when Eval receives an empty wavelength axis.
func (g *Generator) DefaultWavelength() float64 { return g.defaultWL }

// Defaults returns a copy of the accepted keywords and their defaults.
func (g *Generator) Defaults() Params { return g.defaults.Clone() }

// Model returns the generator as an unspecialized Model. The pointer is the
// same on every call.
func (g *Generator) Model() *Model { return g.model }

// Model is a generator with a fixed set of parameter overrides.
type Model struct {
	base      *Generator
	overrides Params
}

// Base returns the underlying generator; nil for a zero Model.
func (m *Model) Base() *Generator {
	if m == nil {
		return nil
	}
	return m.base
}

// Overrides returns a copy of the parameters bound by specialization.
func (m *Model) Overrides() Params {
	if m == nil {
		return Params{}
	}
	return m.overrides.Clone()
}

// Defaults returns the effective defaults: generator defaults with the
// model's overrides applied. A zero Model has none.
func (m *Model) Defaults() Params {
	if m.Base() == nil {
		return Params{}
	}
	out := m.base.defaults.Clone()
	for k, v := range m.overrides {
		out[k] = v
	}
	return out
}

// Specialize binds more parameters. The result shares the base generator;
// later bindings win over earlier ones. Unknown keys and mistyped values
// are rejected. A zero Model yields ErrUnknownModel.
func (m *Model) Specialize(over Params) (*Model, error) {
	if m.Base() == nil {
		return nil, fmt.Errorf("Specialize: no underlying generator: %w", ErrUnknownModel)
	}
	merged, err := resolve(m.base.defaults, m.overrides, over)
	if err != nil {
		return nil, fmt.Errorf("Specialize(%s): %w", m.base.name, err)
	}
	return &Model{base: m.base, overrides: merged}, nil
}

// MustSpecialize is Specialize for catalog literals; it panics on error.
func (m *Model) MustSpecialize(over Params) *Model {
	s, err := m.Specialize(over)
	if err != nil {
		panic(err)
	}
	return s
}

// Eval computes the record at wavelengths wl with call-time parameters p
// layered over the model's effective defaults. An empty wl evaluates at the
// generator's default wavelength. A zero Model yields ErrUnknownModel.
func (m *Model) Eval(wl []float64, p Params) (sdict.SDict, error) {
	if m.Base() == nil {
		return sdict.SDict{}, fmt.Errorf("Eval: no underlying generator: %w", ErrUnknownModel)
	}
	resolved, err := resolve(m.base.defaults, m.Defaults(), p)
	if err != nil {
		return sdict.SDict{}, fmt.Errorf("%s: %w", m.base.name, err)
	}
	if len(wl) == 0 {
		wl = vec.Scalar(m.base.defaultWL)
	}
	s, err := m.base.fn(wl, resolved)
	if err != nil {
		return sdict.SDict{}, fmt.Errorf("%s: %w", m.base.name, err)
	}
	return s, nil
}

// String renders "name(k=v, ...)" with the bound overrides.
func (m *Model) String() string {
	if m == nil || m.base == nil {
		return "<nil model>"
	}
	return m.base.name + "(" + m.overrides.Describe() + ")"
}
