package serialize

// Option adjusts a dump or encode call.
type Option func(*settings)

type settings struct {
	byAlias bool
}

// ByAlias keys structured output by each field's alias instead of its
// declared name. The textual representation never uses aliases.
func ByAlias() Option {
	return func(s *settings) {
		s.byAlias = true
	}
}

func apply(opts []Option) settings {
	cfg := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
