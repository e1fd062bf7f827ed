package accessor

import (
	"errors"
	"fmt"
)

// Policy selects how an Accessor treats repeated reads on one instance.
type Policy string

const (
	// Recompute invokes the underlying function on every read.
	Recompute Policy = "recompute-every-access"
	// CacheFirstAccess invokes the underlying function once per instance
	// and serves the stored result afterwards.
	CacheFirstAccess Policy = "cache-on-first-access"
)

// ErrNoCacheSlot reports a cache-on-first-access accessor bound to an
// instance type that does not embed Cache.
var ErrNoCacheSlot = errors.New("accessor: instance type has no embedded cache slot")

// Getter produces the value of a computed field from an instance.
type Getter[T any] func(*T) (any, error)

// Setter writes through a computed field into the instance's stored state.
type Setter[T any] func(*T, any) error

// Accessor is a uniform gettable, optionally settable, attribute wrapping a
// read function. The zero value is unusable; build one with New or Cached.
type Accessor[T any] struct {
	get    Getter[T]
	set    Setter[T]
	policy Policy
}

// New promotes a bare read function to a plain recompute-every-access
// accessor.
func New[T any](get Getter[T]) Accessor[T] {
	return Accessor[T]{get: get, policy: Recompute}
}

// Cached wraps a read function with cache-on-first-access semantics. The
// instance type must embed Cache for reads to succeed.
func Cached[T any](get Getter[T]) Accessor[T] {
	return Accessor[T]{get: get, policy: CacheFirstAccess}
}

// WithSetter returns a copy of the accessor with a write path attached.
// Attaching a setter does not alter read semantics: a cached accessor keeps
// serving cached reads even after a write.
func (a Accessor[T]) WithSetter(set Setter[T]) Accessor[T] {
	a.set = set
	return a
}

// WithPolicy returns a copy of the accessor with the cache policy replaced.
func (a Accessor[T]) WithPolicy(policy Policy) Accessor[T] {
	a.policy = policy
	return a
}

// Policy returns the accessor's cache policy.
func (a Accessor[T]) Policy() Policy {
	return a.policy
}

// Settable reports whether a write path is attached.
func (a Accessor[T]) Settable() bool {
	return a.set != nil
}

// Valid reports whether the accessor wraps a read function.
func (a Accessor[T]) Valid() bool {
	return a.get != nil
}

// Read produces the field value for an instance. The name keys the
// instance's cache slot under CacheFirstAccess. Errors from the underlying
// function propagate unchanged.
func (a Accessor[T]) Read(instance *T, name string) (any, error) {
	if a.get == nil {
		return nil, fmt.Errorf("accessor: %q has no read function", name)
	}
	if instance == nil {
		return nil, fmt.Errorf("accessor: %q read on nil instance", name)
	}
	if a.policy != CacheFirstAccess {
		return a.get(instance)
	}

	carrier, ok := any(instance).(slotCarrier)
	if !ok {
		return nil, fmt.Errorf("accessor: %q: %w", name, ErrNoCacheSlot)
	}
	cache := carrier.computedSlots()
	if value, ok := cache.lookup(name); ok {
		return value, nil
	}
	value, err := a.get(instance)
	if err != nil {
		return nil, err
	}
	cache.store(name, value)
	return value, nil
}

// Write assigns through the attached setter. The cache, if any, is left
// untouched; invalidation after a write is the caller's responsibility.
func (a Accessor[T]) Write(instance *T, name string, value any) error {
	if a.set == nil {
		return fmt.Errorf("accessor: %q is not settable", name)
	}
	if instance == nil {
		return fmt.Errorf("accessor: %q write on nil instance", name)
	}
	return a.set(instance, value)
}
