package serialize_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-computed/pkg/serialize"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := serialize.NewMap()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)
	m.Set("apple", 4)

	if diff := cmp.Diff([]string{"zebra", "apple", "mango"}, m.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if value, _ := m.Get("apple"); value != 4 {
		t.Fatalf("overwrite lost the new value: %v", value)
	}
}

func TestMapMarshalJSONOrdered(t *testing.T) {
	m := serialize.NewMap()
	m.Set("zebra", 1)
	m.Set("apple", "two")
	m.Set("mango", []int{3})

	encoded, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zebra":1,"apple":"two","mango":[3]}`
	if string(encoded) != want {
		t.Fatalf("json = %s, want %s", encoded, want)
	}
}

func TestMapMarshalYAMLOrdered(t *testing.T) {
	m := serialize.NewMap()
	m.Set("zebra", 1)
	m.Set("apple", "two")

	encoded, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "zebra: 1\napple: two\n"
	if string(encoded) != want {
		t.Fatalf("yaml = %q, want %q", encoded, want)
	}
}
