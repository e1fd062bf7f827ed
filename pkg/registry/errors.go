package registry

import "errors"

// Definition-time failures. All three surface immediately to whoever wires
// the model; none are downgraded to warnings. Reading or dumping a correctly
// registered field has no failure mode of its own: accessor errors propagate
// unchanged.
var (
	// ErrFieldNameCollision reports a computed field name that shadows a
	// stored field on the same model struct.
	ErrFieldNameCollision = errors.New("registry: computed field name collides with a stored field")

	// ErrDuplicateAlias reports two fields on the same model resolving to
	// the same output alias.
	ErrDuplicateAlias = errors.New("registry: duplicate field alias")

	// ErrUnboundComputedField reports a setter attached to a name with no
	// registered accessor.
	ErrUnboundComputedField = errors.New("registry: setter attached to unregistered computed field")
)
