package registry

import (
	"fmt"

	"github.com/goliatone/go-computed/pkg/accessor"
)

// Inherit builds a registry for a derived model struct C seeded with the
// computed fields of its base P. The base function maps a derived instance
// onto its embedded base, letting the parent's accessors run unchanged.
// Derived registrations that reuse a name fully replace the inherited
// descriptor while keeping its slot in the enumeration order; flags are
// never merged.
//
// Inherited registrations are re-validated against C's stored fields, so a
// derived struct that declares a stored field shadowing an inherited
// computed name fails here with ErrFieldNameCollision.
func Inherit[C, P any](parent *Registry[P], base func(*C) *P) (*Registry[C], error) {
	if parent == nil {
		return nil, fmt.Errorf("registry: parent registry is required")
	}
	if base == nil {
		return nil, fmt.Errorf("registry: base projection is required")
	}

	child, err := New[C]()
	if err != nil {
		return nil, err
	}
	for _, desc := range parent.ordered {
		opts := []Option{
			WithAlias(desc.Alias),
			WithReturnType(desc.ReturnType),
		}
		if !desc.IncludeInRepr {
			opts = append(opts, WithoutRepr())
		}
		if err := child.Register(desc.Name, accessor.Lift(desc.acc, base), opts...); err != nil {
			return nil, fmt.Errorf("registry: inherit %q: %w", desc.Name, err)
		}
	}
	return child, nil
}

// MustInherit panics on inheritance failure. Useful for package-level wiring.
func MustInherit[C, P any](parent *Registry[P], base func(*C) *P) *Registry[C] {
	child, err := Inherit(parent, base)
	if err != nil {
		panic(err)
	}
	return child
}
