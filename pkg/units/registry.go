// Package units is a named unit registry with dimension checking. Units carry
// a dimension vector used to reject incompatible conversions; the conversion
// arithmetic, including the affine temperature scales, is done by go-units.
package units

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	gounits "github.com/bcicen/go-units"
)

// Unit describes a named unit. For a linear unit one Unit equals Factor of
// the SI base unit of Dim. Affine units (temperature scales) have no factor
// and must be predefined by go-units.
type Unit struct {
	Name    string
	Aliases []string
	Dim     Dimension
	Factor  float64
	Affine  bool

	lib gounits.Unit
}

// Registry maps unit names and aliases to units.
type Registry struct {
	mu    sync.RWMutex
	units map[string]Unit
	names []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{units: make(map[string]Unit)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds u under its name and aliases. Nothing is registered if any
// key is already taken.
func (r *Registry) Register(u Unit) error {
	if !u.Affine && (u.Factor == 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0)) {
		return &InvalidUnitError{Name: u.Name, Factor: u.Factor}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{u.Name}, u.Aliases...)
	for _, k := range keys {
		if _, ok := r.units[normalize(k)]; ok {
			return &DuplicateUnitError{Name: k}
		}
	}

	lib, err := bindLibUnit(u)
	if err != nil {
		return err
	}
	u.lib = lib

	for _, k := range keys {
		r.units[normalize(k)] = u
	}
	r.names = append(r.names, u.Name)
	return nil
}

// Lookup returns the unit registered under name or alias.
func (r *Registry) Lookup(name string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[normalize(name)]
	if !ok {
		return Unit{}, &UndefinedUnitError{Name: name}
	}
	return u, nil
}

// Names lists the canonical unit names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	sort.Strings(out)
	return out
}

// Convert converts value from one unit to another. It fails with
// *UndefinedUnitError for unknown names and *DimensionalityError when the
// units measure different things.
func (r *Registry) Convert(value float64, from, to string) (float64, error) {
	src, err := r.Lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := r.Lookup(to)
	if err != nil {
		return 0, err
	}
	if src.Dim != dst.Dim {
		return 0, &DimensionalityError{From: from, To: to, FromDim: src.Dim, ToDim: dst.Dim}
	}

	v, err := gounits.ConvertFloat(value, src.lib, dst.lib)
	if err != nil {
		return 0, fmt.Errorf("no conversion from '%s' to '%s': %w", from, to, err)
	}
	return v.Float(), nil
}

// Compatible reports whether both units exist and share a dimension.
func (r *Registry) Compatible(a, b string) bool {
	ua, err := r.Lookup(a)
	if err != nil {
		return false
	}
	ub, err := r.Lookup(b)
	if err != nil {
		return false
	}
	return ua.Dim == ub.Dim
}
