package registry

import (
	"github.com/goliatone/go-computed/pkg/accessor"
	"github.com/goliatone/go-computed/pkg/fields"
)

// Descriptor is the immutable registration record for one computed field.
// Registries hand out copies; mutating one has no effect on the registry.
type Descriptor[T any] struct {
	// Name is the declared field name, used for text representation and as
	// the default structured-output key.
	Name string
	// Alias is the structured-output key when alias mode is requested.
	// Defaults to Name.
	Alias string
	// IncludeInRepr controls presence in the textual representation only;
	// dumps always include the field.
	IncludeInRepr bool
	// ReturnType is the declared schema kind of the accessor's result. It
	// is metadata for schema export, never enforced at read time.
	ReturnType fields.Kind

	acc accessor.Accessor[T]
}

// Accessor returns the field's accessor wrapper.
func (d Descriptor[T]) Accessor() accessor.Accessor[T] {
	return d.acc
}

// Policy returns the accessor's cache policy.
func (d Descriptor[T]) Policy() accessor.Policy {
	return d.acc.Policy()
}

// Settable reports whether the field has a write path.
func (d Descriptor[T]) Settable() bool {
	return d.acc.Settable()
}

// Read produces the field value for an instance through the accessor,
// honoring its cache policy.
func (d Descriptor[T]) Read(instance *T) (any, error) {
	return d.acc.Read(instance, d.Name)
}

// Write assigns through the field's setter.
func (d Descriptor[T]) Write(instance *T, value any) error {
	return d.acc.Write(instance, d.Name, value)
}

// Option adjusts a single computed field registration.
type Option func(*settings)

type settings struct {
	alias        string
	hideFromRepr bool
	policy       accessor.Policy
	returnType   fields.Kind
}

// WithAlias overrides the structured-output key for the field.
func WithAlias(alias string) Option {
	return func(s *settings) {
		s.alias = alias
	}
}

// WithoutRepr removes the field from the textual representation. Dump and
// JSON output are unaffected.
func WithoutRepr() Option {
	return func(s *settings) {
		s.hideFromRepr = true
	}
}

// WithCachePolicy overrides the cache policy inferred from the accessor
// wrapper.
func WithCachePolicy(policy accessor.Policy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

// WithReturnType declares the schema kind of the accessor's result.
func WithReturnType(kind fields.Kind) Option {
	return func(s *settings) {
		s.returnType = kind
	}
}
