// Package registry collects computed field metadata for a model struct type
// at definition time and hands ordered enumeration to serializers and schema
// exporters. A Registry validates every registration against the struct's
// stored fields (names and aliases live in disjoint namespaces) and becomes
// effectively immutable once model wiring finishes: registration is expected
// during package initialization, before any instance exists, and needs no
// synchronization after that.
package registry
