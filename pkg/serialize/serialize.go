package serialize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-computed/pkg/registry"
)

// Dump walks an instance's stored fields in declaration order, then its
// computed fields in registration order, and returns the combined ordered
// mapping. Computed accessors run through their wrappers, so a dump may
// populate cache slots as a side effect; repeated dumps of the same
// instance do not recompute already-cached fields.
func Dump[T any](reg *registry.Registry[T], instance *T, opts ...Option) (*Map, error) {
	if reg == nil {
		return nil, fmt.Errorf("serialize: registry is required")
	}
	if instance == nil {
		return nil, fmt.Errorf("serialize: instance is required")
	}
	cfg := apply(opts)

	out := NewMap()
	stored := reg.Stored()
	for _, field := range stored.Fields() {
		value, err := stored.Value(instance, field)
		if err != nil {
			return nil, err
		}
		key := field.Name
		if cfg.byAlias {
			key = field.Alias
		}
		out.Set(key, value)
	}
	for _, desc := range reg.Fields() {
		value, err := desc.Read(instance)
		if err != nil {
			return nil, err
		}
		key := desc.Name
		if cfg.byAlias {
			key = desc.Alias
		}
		out.Set(key, value)
	}
	return out, nil
}

// EncodeJSON returns the dump mapping encoded as a JSON object, keys in
// emission order.
func EncodeJSON[T any](reg *registry.Registry[T], instance *T, opts ...Option) ([]byte, error) {
	dump, err := Dump(reg, instance, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dump)
}

// EncodeYAML returns the dump mapping encoded as a YAML document, keys in
// emission order.
func EncodeYAML[T any](reg *registry.Registry[T], instance *T, opts ...Option) ([]byte, error) {
	dump, err := Dump(reg, instance, opts...)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(dump)
}

// Repr renders the textual representation: the struct type name followed by
// name=value pairs, stored fields first. Computed fields registered without
// repr inclusion are omitted, and declared names are always used — never
// aliases.
func Repr[T any](reg *registry.Registry[T], instance *T) (string, error) {
	if reg == nil {
		return "", fmt.Errorf("serialize: registry is required")
	}
	if instance == nil {
		return "", fmt.Errorf("serialize: instance is required")
	}

	var parts []string
	stored := reg.Stored()
	for _, field := range stored.Fields() {
		value, err := stored.Value(instance, field)
		if err != nil {
			return "", err
		}
		parts = append(parts, field.Name+"="+formatValue(value))
	}
	for _, desc := range reg.Fields() {
		if !desc.IncludeInRepr {
			continue
		}
		value, err := desc.Read(instance)
		if err != nil {
			return "", err
		}
		parts = append(parts, desc.Name+"="+formatValue(value))
	}
	return stored.Type().Name() + "(" + strings.Join(parts, ", ") + ")", nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return strconv.Quote(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
