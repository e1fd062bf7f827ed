// Package computed lets a Go struct expose derived fields — values produced
// by accessor functions rather than stored in the struct — as first-class
// participants in serialization output, alongside the struct's own fields.
//
// A registry per model struct records each computed field's accessor, output
// alias, repr inclusion, and cache policy at definition time. Serializers
// then emit stored fields in declaration order followed by computed fields
// in registration order, across a textual representation, an ordered dump
// mapping, and JSON/YAML encodings of that mapping.
//
//	type Shape struct {
//	    accessor.Cache
//	    Width float64 `json:"width"`
//	}
//
//	var shapes = computed.MustNewRegistry[Shape]()
//
//	func init() {
//	    shapes.MustRegister("Area", computed.NewAccessor(func(s *Shape) (any, error) {
//	        return s.Width * s.Width, nil
//	    }))
//	}
//
// This package is a thin facade; the implementation lives in pkg/accessor,
// pkg/registry, pkg/serialize, and pkg/schemagen.
package computed
