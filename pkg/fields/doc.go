// Package fields enumerates the stored fields of a model struct. It turns a
// struct type into an ordered Structure whose declaration order is
// authoritative for every downstream consumer: registries validate computed
// names against it and serializers walk it front to back. Aliases come from
// the `json` struct tag; fields tagged `json:"-"` are invisible to the rest
// of the library. Results are cached per type, so repeated inspection of the
// same model is cheap.
package fields
