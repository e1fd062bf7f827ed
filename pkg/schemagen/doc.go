// Package schemagen exports the field naming of a model — stored and
// computed — as an OpenAPI object schema. Computed fields surface with
// their declared return kind and are flagged read-only unless a setter is
// attached. Export is naming and kind metadata only; nothing here validates
// instances against the produced schema.
package schemagen
