// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// params.go - keyword parameters for generators and their specializations.

package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Params holds keyword parameters by name. Numbers are stored as float64
// after normalization; strings stay strings.
type Params map[string]any

// Clone returns a shallow copy (values are scalars).
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Float returns p[key] as float64.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrUnknownParam)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%q=%v (%T): want number: %w", key, v, v, ErrParamType)
	}
	return f, nil
}

// Text returns p[key] as a string.
func (p Params) Text(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrUnknownParam)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q=%v (%T): want string: %w", key, v, v, ErrParamType)
	}
	return s, nil
}

// floats reads several numeric keys at once, in order.
func (p Params) floats(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := p.Float(k)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Describe renders "k=v" pairs in key order, comma separated.
func (p Params) Describe() string {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		switch v := p[k].(type) {
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case string:
			b.WriteString(strconv.Quote(v))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// ParseValue converts textual input (CLI flags, config) into a parameter
// value: numbers become float64, everything else stays a string.
func ParseValue(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	default:
		return 0, false
	}
}

// resolve layers over onto base. Every key in over must exist in accepted,
// and its value must match the kind (number/string) of the accepted default.
// Numbers are normalized to float64. The result is a fresh map.
func resolve(accepted, base, over Params) (Params, error) {
	out := base.Clone()
	for _, k := range over.Keys() {
		def, ok := accepted[k]
		if !ok {
			return nil, fmt.Errorf("%q: %w", k, ErrUnknownParam)
		}
		v := over[k]
		switch def.(type) {
		case string:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%q=%v (%T): want string: %w", k, v, v, ErrParamType)
			}
			out[k] = s
		default:
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%q=%v (%T): want number: %w", k, v, v, ErrParamType)
			}
			out[k] = f
		}
	}
	return out, nil
}
