package fields

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Field describes a single stored field on a model struct.
type Field struct {
	// Name is the declared Go field name.
	Name string
	// Alias is the wire name taken from the `json` tag, defaulting to Name.
	Alias string
	// Kind is the simplified schema kind inferred from the field type.
	Kind Kind
	// Index locates the field for reflect.Value.FieldByIndex, including
	// the path through anonymous embedded structs.
	Index []int
	// Type is the field's Go type.
	Type reflect.Type
}

// Structure is the ordered stored-field enumeration for a struct type.
// Instances are built once per type and shared; treat them as read-only.
type Structure struct {
	typ    reflect.Type
	fields []Field
	byName map[string]int
}

var structureCache sync.Map // map[reflect.Type]*Structure

// Inspect retrieves or builds the Structure for a struct type. Pointer
// types resolve to their element. Non-struct types are rejected.
func Inspect(t reflect.Type) (*Structure, error) {
	if t == nil {
		return nil, fmt.Errorf("fields: type is required")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fields: %s is not a struct type", t.Kind())
	}

	if cached, ok := structureCache.Load(t); ok {
		return cached.(*Structure), nil
	}

	structure := &Structure{
		typ:    t,
		byName: make(map[string]int),
	}
	collectFields(t, nil, structure)

	actual, _ := structureCache.LoadOrStore(t, structure)
	return actual.(*Structure), nil
}

// InspectOf is a convenience wrapper resolving the type from a value.
func InspectOf(v any) (*Structure, error) {
	if v == nil {
		return nil, fmt.Errorf("fields: value is required")
	}
	return Inspect(reflect.TypeOf(v))
}

func collectFields(t reflect.Type, prefix []int, dest *Structure) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous {
			embedded := sf.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && !hasJSONName(sf) {
				// Inline embedded struct fields at the embed position,
				// matching encoding/json flattening.
				collectFields(embedded, index, dest)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		alias, skip := jsonAlias(sf)
		if skip {
			continue
		}

		field := Field{
			Name:  sf.Name,
			Alias: alias,
			Kind:  KindOf(sf.Type),
			Index: index,
			Type:  sf.Type,
		}

		if pos, exists := dest.byName[field.Name]; exists {
			// Shallower declarations win over embedded ones, again
			// following encoding/json.
			if len(dest.fields[pos].Index) > len(field.Index) {
				dest.fields[pos] = field
			}
			continue
		}
		dest.byName[field.Name] = len(dest.fields)
		dest.fields = append(dest.fields, field)
	}
}

func hasJSONName(sf reflect.StructField) bool {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	return name != "" && name != "-"
}

func jsonAlias(sf reflect.StructField) (alias string, skip bool) {
	tag := sf.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		return sf.Name, false
	}
	return name, false
}

// Type returns the struct type the Structure describes.
func (s *Structure) Type() reflect.Type {
	return s.typ
}

// Fields returns the stored fields in declaration order. The slice is a
// copy; callers may reorder or filter it freely.
func (s *Structure) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len reports the number of stored fields.
func (s *Structure) Len() int {
	return len(s.fields)
}

// Lookup finds a stored field by declared name.
func (s *Structure) Lookup(name string) (Field, bool) {
	pos, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[pos], true
}

// Has reports whether a stored field with the declared name exists.
func (s *Structure) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// HasAlias reports whether any stored field resolves to the given alias.
func (s *Structure) HasAlias(alias string) bool {
	for _, field := range s.fields {
		if field.Alias == alias {
			return true
		}
	}
	return false
}

// Value reads a stored field from an instance, which must be a pointer to
// (or value of) the inspected struct type.
func (s *Structure) Value(instance any, field Field) (any, error) {
	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("fields: instance is nil")
		}
		rv = rv.Elem()
	}
	if rv.Type() != s.typ {
		return nil, fmt.Errorf("fields: instance type %s does not match %s", rv.Type(), s.typ)
	}
	fv, err := rv.FieldByIndexErr(field.Index)
	if err != nil {
		// Nil embedded pointer on the path to the field.
		return nil, fmt.Errorf("fields: read %s: %w", field.Name, err)
	}
	return fv.Interface(), nil
}
