package schemagen

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-computed/pkg/fields"
	"github.com/goliatone/go-computed/pkg/registry"
)

// Option adjusts schema export.
type Option func(*settings)

type settings struct {
	byAlias bool
}

// ByAlias keys schema properties by each field's alias instead of its
// declared name.
func ByAlias() Option {
	return func(s *settings) {
		s.byAlias = true
	}
}

// Schema builds an OpenAPI object schema covering the model's stored fields
// followed by its computed fields. Stored fields are listed as required;
// computed fields carry their declared return kind and are read-only unless
// a setter is attached.
func Schema[T any](reg *registry.Registry[T], opts ...Option) (*openapi3.Schema, error) {
	if reg == nil {
		return nil, fmt.Errorf("schemagen: registry is required")
	}
	cfg := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	schema := openapi3.NewObjectSchema()
	schema.Properties = make(openapi3.Schemas)

	for _, field := range reg.Stored().Fields() {
		key := field.Name
		if cfg.byAlias {
			key = field.Alias
		}
		schema.Properties[key] = kindSchema(field.Kind).NewRef()
		schema.Required = append(schema.Required, key)
	}
	for _, desc := range reg.Fields() {
		key := desc.Name
		if cfg.byAlias {
			key = desc.Alias
		}
		property := kindSchema(desc.ReturnType)
		property.ReadOnly = !desc.Settable()
		schema.Properties[key] = property.NewRef()
	}
	return schema, nil
}

func kindSchema(kind fields.Kind) *openapi3.Schema {
	switch kind {
	case fields.KindString:
		return openapi3.NewStringSchema()
	case fields.KindInteger:
		return openapi3.NewIntegerSchema()
	case fields.KindNumber:
		return openapi3.NewFloat64Schema()
	case fields.KindBoolean:
		return openapi3.NewBoolSchema()
	case fields.KindArray:
		return openapi3.NewArraySchema()
	case fields.KindObject:
		return openapi3.NewObjectSchema()
	default:
		// Undeclared return kinds export as an unconstrained schema.
		return &openapi3.Schema{}
	}
}
