package registry

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-computed/pkg/accessor"
	"github.com/goliatone/go-computed/pkg/fields"
)

// Registry is the per-model-struct table of computed fields. Enumeration
// order is registration order; re-registering a name replaces its descriptor
// in place without moving it.
type Registry[T any] struct {
	structure *fields.Structure
	ordered   []Descriptor[T]
	index     map[string]int
}

// New builds an empty registry for the model struct T, inspecting its stored
// fields so registrations can be validated against them.
func New[T any]() (*Registry[T], error) {
	structure, err := fields.Inspect(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return &Registry[T]{
		structure: structure,
		index:     make(map[string]int),
	}, nil
}

// MustNew panics on construction failure. Useful for package-level wiring.
func MustNew[T any]() *Registry[T] {
	r, err := New[T]()
	if err != nil {
		panic(err)
	}
	return r
}

// Register records a computed field under the declared name. The cache
// policy defaults to the accessor's own; WithCachePolicy overrides it.
func (r *Registry[T]) Register(name string, acc accessor.Accessor[T], opts ...Option) error {
	if name == "" {
		return fmt.Errorf("registry: computed field name is required")
	}
	if !acc.Valid() {
		return fmt.Errorf("registry: computed field %q has no read function", name)
	}

	cfg := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if r.structure.Has(name) {
		return fmt.Errorf("%w: %q", ErrFieldNameCollision, name)
	}

	if cfg.policy != "" {
		acc = acc.WithPolicy(cfg.policy)
	}
	if acc.Policy() == accessor.CacheFirstAccess && !accessor.HasCacheSlot[T]() {
		return fmt.Errorf("registry: computed field %q: %w", name, accessor.ErrNoCacheSlot)
	}

	alias := cfg.alias
	if alias == "" {
		alias = name
	}
	if err := r.checkAlias(name, alias); err != nil {
		return err
	}

	desc := Descriptor[T]{
		Name:          name,
		Alias:         alias,
		IncludeInRepr: !cfg.hideFromRepr,
		ReturnType:    cfg.returnType,
		acc:           acc,
	}

	if pos, exists := r.index[name]; exists {
		// Redeclaration fully replaces the descriptor, keeping its slot in
		// the enumeration order.
		r.ordered[pos] = desc
		return nil
	}
	r.index[name] = len(r.ordered)
	r.ordered = append(r.ordered, desc)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry[T]) MustRegister(name string, acc accessor.Accessor[T], opts ...Option) {
	if err := r.Register(name, acc, opts...); err != nil {
		panic(err)
	}
}

// RegisterFunc promotes a bare read function to a recompute-every-access
// accessor and registers it.
func (r *Registry[T]) RegisterFunc(name string, get accessor.Getter[T], opts ...Option) error {
	return r.Register(name, accessor.New(get), opts...)
}

// AttachSetter adds a write path to an already registered computed field.
// Read semantics are untouched; a cached field keeps serving cached reads.
func (r *Registry[T]) AttachSetter(name string, set accessor.Setter[T]) error {
	if set == nil {
		return fmt.Errorf("registry: setter for %q is required", name)
	}
	pos, exists := r.index[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnboundComputedField, name)
	}
	r.ordered[pos].acc = r.ordered[pos].acc.WithSetter(set)
	return nil
}

func (r *Registry[T]) checkAlias(name, alias string) error {
	if r.structure.HasAlias(alias) {
		return fmt.Errorf("%w: %q is already a stored field alias", ErrDuplicateAlias, alias)
	}
	for _, desc := range r.ordered {
		if desc.Name == name {
			continue
		}
		if desc.Alias == alias {
			return fmt.Errorf("%w: %q is already used by computed field %q", ErrDuplicateAlias, alias, desc.Name)
		}
	}
	return nil
}

// Fields returns descriptor copies in registration order.
func (r *Registry[T]) Fields() []Descriptor[T] {
	out := make([]Descriptor[T], len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Lookup finds a computed field descriptor by declared name.
func (r *Registry[T]) Lookup(name string) (Descriptor[T], bool) {
	pos, ok := r.index[name]
	if !ok {
		return Descriptor[T]{}, false
	}
	return r.ordered[pos], true
}

// Len reports the number of registered computed fields.
func (r *Registry[T]) Len() int {
	return len(r.ordered)
}

// Stored exposes the model's stored-field enumeration, merged with the
// computed fields by serializers.
func (r *Registry[T]) Stored() *fields.Structure {
	return r.structure
}

// Read produces the named computed field's value for an instance.
func (r *Registry[T]) Read(instance *T, name string) (any, error) {
	desc, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown computed field %q", name)
	}
	return desc.Read(instance)
}

// Write assigns through the named computed field's setter.
func (r *Registry[T]) Write(instance *T, name string, value any) error {
	desc, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("registry: unknown computed field %q", name)
	}
	return desc.Write(instance, value)
}
