package computed

import (
	"github.com/goliatone/go-computed/pkg/accessor"
	"github.com/goliatone/go-computed/pkg/fields"
	"github.com/goliatone/go-computed/pkg/registry"
	"github.com/goliatone/go-computed/pkg/serialize"
)

// Cache is the per-instance slot table model structs embed to enable
// cache-on-first-access computed fields.
type Cache = accessor.Cache

// Policy re-exports the accessor cache policies.
type Policy = accessor.Policy

const (
	Recompute        = accessor.Recompute
	CacheFirstAccess = accessor.CacheFirstAccess
)

// Kind re-exports the simplified schema kind enumeration.
type Kind = fields.Kind

const (
	KindString  = fields.KindString
	KindInteger = fields.KindInteger
	KindNumber  = fields.KindNumber
	KindBoolean = fields.KindBoolean
	KindArray   = fields.KindArray
	KindObject  = fields.KindObject
)

// Definition-time failures surfaced by registration.
var (
	ErrFieldNameCollision   = registry.ErrFieldNameCollision
	ErrDuplicateAlias       = registry.ErrDuplicateAlias
	ErrUnboundComputedField = registry.ErrUnboundComputedField
	ErrNoCacheSlot          = accessor.ErrNoCacheSlot
)

// NewAccessor promotes a bare read function to a recompute-every-access
// accessor.
func NewAccessor[T any](get accessor.Getter[T]) accessor.Accessor[T] {
	return accessor.New(get)
}

// CachedAccessor wraps a read function with cache-on-first-access
// semantics.
func CachedAccessor[T any](get accessor.Getter[T]) accessor.Accessor[T] {
	return accessor.Cached(get)
}

// NewRegistry builds an empty computed-field registry for the model struct
// T.
func NewRegistry[T any]() (*registry.Registry[T], error) {
	return registry.New[T]()
}

// MustNewRegistry panics on construction failure. Useful for package-level
// wiring.
func MustNewRegistry[T any]() *registry.Registry[T] {
	return registry.MustNew[T]()
}

// Dump returns the ordered stored-then-computed mapping for an instance.
func Dump[T any](reg *registry.Registry[T], instance *T, opts ...serialize.Option) (*serialize.Map, error) {
	return serialize.Dump(reg, instance, opts...)
}

// EncodeJSON returns the dump mapping encoded as JSON.
func EncodeJSON[T any](reg *registry.Registry[T], instance *T, opts ...serialize.Option) ([]byte, error) {
	return serialize.EncodeJSON(reg, instance, opts...)
}

// EncodeYAML returns the dump mapping encoded as YAML.
func EncodeYAML[T any](reg *registry.Registry[T], instance *T, opts ...serialize.Option) ([]byte, error) {
	return serialize.EncodeYAML(reg, instance, opts...)
}

// Repr renders the textual representation of an instance.
func Repr[T any](reg *registry.Registry[T], instance *T) (string, error) {
	return serialize.Repr(reg, instance)
}

// ByAlias keys structured output by field aliases.
func ByAlias() serialize.Option {
	return serialize.ByAlias()
}
