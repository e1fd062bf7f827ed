package registry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-computed/pkg/accessor"
	"github.com/goliatone/go-computed/pkg/fields"
	"github.com/goliatone/go-computed/pkg/registry"
)

type product struct {
	accessor.Cache
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

type bareProduct struct {
	Price float64
}

func taxed(p *product) (any, error)   { return p.Price * 1.2, nil }
func display(p *product) (any, error) { return strings.ToUpper(p.SKU), nil }

func TestRegisterKeepsDeclarationOrder(t *testing.T) {
	reg := registry.MustNew[product]()
	reg.MustRegister("Taxed", accessor.New(taxed))
	reg.MustRegister("Display", accessor.New(display), registry.WithAlias("display_name"))
	reg.MustRegister("Zero", accessor.New(func(p *product) (any, error) { return 0, nil }))

	var names []string
	for _, desc := range reg.Fields() {
		names = append(names, desc.Name)
	}
	if diff := cmp.Diff([]string{"Taxed", "Display", "Zero"}, names); diff != "" {
		t.Fatalf("enumeration order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterRejectsStoredNameCollision(t *testing.T) {
	reg := registry.MustNew[product]()
	err := reg.Register("Price", accessor.New(taxed))
	if !errors.Is(err, registry.ErrFieldNameCollision) {
		t.Fatalf("expected ErrFieldNameCollision, got %v", err)
	}
}

func TestRegisterRejectsDuplicateAliases(t *testing.T) {
	reg := registry.MustNew[product]()

	if err := reg.Register("Taxed", accessor.New(taxed), registry.WithAlias("sku")); !errors.Is(err, registry.ErrDuplicateAlias) {
		t.Fatalf("expected stored-alias clash, got %v", err)
	}

	reg.MustRegister("Taxed", accessor.New(taxed), registry.WithAlias("total"))
	if err := reg.Register("Display", accessor.New(display), registry.WithAlias("total")); !errors.Is(err, registry.ErrDuplicateAlias) {
		t.Fatalf("expected computed-alias clash, got %v", err)
	}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	reg := registry.MustNew[product]()
	reg.MustRegister("Taxed", accessor.New(taxed), registry.WithAlias("total"))
	reg.MustRegister("Display", accessor.New(display))

	// Redeclaration swaps the descriptor but keeps its slot and frees the
	// old alias for reuse.
	reg.MustRegister("Taxed", accessor.New(func(p *product) (any, error) { return p.Price, nil }))
	reg.MustRegister("Net", accessor.New(taxed), registry.WithAlias("total"))

	var names []string
	for _, desc := range reg.Fields() {
		names = append(names, desc.Name)
	}
	if diff := cmp.Diff([]string{"Taxed", "Display", "Net"}, names); diff != "" {
		t.Fatalf("order after redeclaration mismatch (-want +got):\n%s", diff)
	}

	desc, ok := reg.Lookup("Taxed")
	if !ok {
		t.Fatalf("expected Taxed to stay registered")
	}
	if desc.Alias != "Taxed" {
		t.Fatalf("redeclared descriptor kept the old alias %q", desc.Alias)
	}
}

func TestAttachSetter(t *testing.T) {
	reg := registry.MustNew[product]()

	err := reg.AttachSetter("Taxed", func(p *product, value any) error { return nil })
	if !errors.Is(err, registry.ErrUnboundComputedField) {
		t.Fatalf("expected ErrUnboundComputedField, got %v", err)
	}

	reg.MustRegister("Taxed", accessor.New(taxed))
	if err := reg.AttachSetter("Taxed", func(p *product, value any) error {
		p.Price = value.(float64) / 1.2
		return nil
	}); err != nil {
		t.Fatalf("attach setter: %v", err)
	}

	instance := &product{Price: 10}
	if err := reg.Write(instance, "Taxed", 24.0); err != nil {
		t.Fatalf("write: %v", err)
	}
	if instance.Price != 20 {
		t.Fatalf("setter round-trip: Price = %v, want 20", instance.Price)
	}
}

func TestCachePolicyOverride(t *testing.T) {
	calls := 0
	reg := registry.MustNew[product]()
	reg.MustRegister("Tick", accessor.New(func(p *product) (any, error) {
		calls++
		return calls, nil
	}), registry.WithCachePolicy(accessor.CacheFirstAccess))

	instance := &product{}
	for i := 0; i < 3; i++ {
		if _, err := reg.Read(instance, "Tick"); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("override to cached ignored: %d invocations, want 1", calls)
	}
}

func TestCachedRegistrationRequiresSlot(t *testing.T) {
	reg := registry.MustNew[bareProduct]()
	err := reg.Register("Tick", accessor.Cached(func(p *bareProduct) (any, error) { return 1, nil }))
	if !errors.Is(err, accessor.ErrNoCacheSlot) {
		t.Fatalf("expected ErrNoCacheSlot at registration, got %v", err)
	}
}

func TestReturnTypeMetadata(t *testing.T) {
	reg := registry.MustNew[product]()
	reg.MustRegister("Taxed", accessor.New(taxed), registry.WithReturnType(fields.KindNumber))

	desc, ok := reg.Lookup("Taxed")
	if !ok {
		t.Fatalf("expected Taxed to be registered")
	}
	if desc.ReturnType != fields.KindNumber {
		t.Fatalf("return type = %q, want %q", desc.ReturnType, fields.KindNumber)
	}
}

func TestReadUnknownField(t *testing.T) {
	reg := registry.MustNew[product]()
	if _, err := reg.Read(&product{}, "Nope"); err == nil {
		t.Fatalf("expected error reading unknown computed field")
	}
}
