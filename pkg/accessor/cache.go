package accessor

// Cache is the per-instance slot table for cache-on-first-access computed
// fields. Embed it in a model struct to opt the struct into cached
// accessors:
//
//	type Shape struct {
//	    accessor.Cache
//	    Width float64
//	}
//
// Slots are allocated lazily on the first cached read and are never cleared
// automatically; Reset and ResetAll are the only invalidation paths. The
// table is not locked: two goroutines racing the first read of the same
// field on the same instance may both invoke the underlying function, and
// whichever write lands last is the value subsequent reads observe.
type Cache struct {
	slots map[string]any
}

// slotCarrier is how an Accessor discovers the embedded Cache on an
// arbitrary instance type. Promotion through embedding satisfies it.
type slotCarrier interface {
	computedSlots() *Cache
}

func (c *Cache) computedSlots() *Cache { return c }

func (c *Cache) lookup(name string) (any, bool) {
	if c.slots == nil {
		return nil, false
	}
	value, ok := c.slots[name]
	return value, ok
}

func (c *Cache) store(name string, value any) {
	if c.slots == nil {
		c.slots = make(map[string]any)
	}
	c.slots[name] = value
}

// Reset clears the cached value for a single computed field, forcing the
// next read to invoke the underlying function again.
func (c *Cache) Reset(name string) {
	if c.slots == nil {
		return
	}
	delete(c.slots, name)
}

// ResetAll clears every cached computed value on the instance.
func (c *Cache) ResetAll() {
	c.slots = nil
}

// Cached reports whether a value is currently cached for the field.
func (c *Cache) Cached(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

// HasCacheSlot reports whether the instance type carries an embedded Cache.
// The check is purely structural; it never touches the instance.
func HasCacheSlot[T any]() bool {
	var probe *T
	_, ok := any(probe).(slotCarrier)
	return ok
}
