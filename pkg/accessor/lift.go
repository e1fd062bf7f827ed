package accessor

// Lift adapts an accessor declared for a base struct onto a derived struct
// that can produce a pointer to its base, typically through embedding. The
// lifted accessor keeps the original's policy and write path; cached reads
// use the derived instance's own slot table.
func Lift[C, P any](acc Accessor[P], base func(*C) *P) Accessor[C] {
	lifted := Accessor[C]{policy: acc.policy}
	if acc.get != nil {
		get := acc.get
		lifted.get = func(instance *C) (any, error) {
			return get(base(instance))
		}
	}
	if acc.set != nil {
		set := acc.set
		lifted.set = func(instance *C, value any) error {
			return set(base(instance), value)
		}
	}
	return lifted
}
