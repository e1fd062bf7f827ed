// Package serialize produces the three output forms of a model instance: a
// textual representation, an insertion-ordered dump mapping, and encodings
// of that mapping as JSON or YAML. Stored fields come first in declaration
// order, computed fields follow in registration order; alias substitution
// applies to structured output only and the repr-inclusion flag applies to
// the textual representation only. Values pass through verbatim — no
// coercion, no validation — and accessor errors abort the operation
// unchanged.
package serialize
