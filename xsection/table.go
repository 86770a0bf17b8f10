// SPDX-License-Identifier: MIT
// Package: pdkmodels/xsection
//
// table.go - loading, validating and querying the technology table.

package xsection

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed technology.yaml
var defaultTableYAML []byte

// Band is an optical communication band.
type Band string

const (
	// BandO is the original band around 1310 nm.
	BandO Band = "o"
	// BandC is the conventional band around 1550 nm.
	BandC Band = "c"
)

// CrossSection is one row of the technology table.
type CrossSection struct {
	Name        string   `yaml:"name" validate:"required,startswith=xs_"`
	Description string   `yaml:"description"`
	Material    string   `yaml:"material" validate:"required,oneof=silicon nitride"`
	Geometry    string   `yaml:"geometry" validate:"required,oneof=strip rib"`
	Band        Band     `yaml:"band" validate:"required,oneof=o c"`
	WL0         float64  `yaml:"wl0" validate:"gt=0"`   // µm
	Neff        float64  `yaml:"neff" validate:"gt=0"`  // effective index at WL0
	Ng          float64  `yaml:"ng" validate:"gt=0"`    // group index at WL0
	Width       float64  `yaml:"width" validate:"gt=0"` // µm
	Aliases     []string `yaml:"aliases" validate:"dive,required"`
}

type tableFile struct {
	CrossSections []CrossSection `yaml:"cross_sections" validate:"required,min=1,dive"`
}

// Table is an immutable, validated set of cross-sections.
type Table struct {
	byName map[string]CrossSection
	alias  map[string]string // alias -> canonical name
	order  []string          // names in file order
}

var validate = validator.New()

// Load parses and validates a YAML technology table from r.
// Any failure is reported as ErrInvalidTable with the cause attached.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrInvalidTable, err)
	}
	return Parse(data)
}

// Parse is Load over an in-memory document.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidTable, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidTable, formatValidationError(err))
	}

	t := &Table{
		byName: make(map[string]CrossSection, len(f.CrossSections)),
		alias:  make(map[string]string),
		order:  make([]string, 0, len(f.CrossSections)),
	}
	for _, xs := range f.CrossSections {
		if t.known(xs.Name) {
			return nil, fmt.Errorf("Parse: duplicate identifier %q: %w", xs.Name, ErrInvalidTable)
		}
		t.byName[xs.Name] = xs
		t.order = append(t.order, xs.Name)
		for _, a := range xs.Aliases {
			if t.known(a) {
				return nil, fmt.Errorf("Parse: duplicate identifier %q: %w", a, ErrInvalidTable)
			}
			t.alias[a] = xs.Name
		}
	}

	return t, nil
}

func (t *Table) known(id string) bool {
	if _, ok := t.byName[id]; ok {
		return true
	}
	_, ok := t.alias[id]
	return ok
}

// Check returns the canonical cross-section name for id (a name or an alias).
// Unknown identifiers yield ErrInvalidCrossSection naming id.
func (t *Table) Check(id string) (string, error) {
	if _, ok := t.byName[id]; ok {
		return id, nil
	}
	if name, ok := t.alias[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidCrossSection, id)
}

// Lookup returns the table row for id (a name or an alias).
func (t *Table) Lookup(id string) (CrossSection, error) {
	name, err := t.Check(id)
	if err != nil {
		return CrossSection{}, err
	}
	xs := t.byName[name]
	xs.Aliases = slices.Clone(xs.Aliases)

	return xs, nil
}

// Names returns canonical names in table order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded technology table, parsed once.
// It panics if the embedded document is invalid (a build defect).
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultTableYAML)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Check canonicalizes id against the default table.
func Check(id string) (string, error) {
	return Default().Check(id)
}

// Lookup returns the default-table row for id.
func Lookup(id string) (CrossSection, error) {
	return Default().Lookup(id)
}

// formatValidationError reduces validator output to the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", e.Namespace())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", e.Namespace(), e.Param(), e.Value())
	case "gt":
		return fmt.Errorf("%s: must be greater than %s, got %v", e.Namespace(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
	}
}
