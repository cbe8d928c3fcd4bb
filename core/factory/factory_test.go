package factory

import (
	"strings"
	"testing"
)

type widget interface {
	Kind() string
}

type gauge struct {
	Scale int `json:"scale"`
}

func (g gauge) Kind() string { return "gauge" }

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry[widget]()
	err := r.Register("gauge", func(conf map[string]any) (widget, error) {
		var g gauge
		if err := Decode(conf, &g); err != nil {
			return nil, err
		}
		return g, nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	w, err := r.Create(ModuleConfig{Type: "gauge", Conf: map[string]any{"scale": 3}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g, ok := w.(gauge)
	if !ok || g.Scale != 3 {
		t.Fatalf("unexpected widget: %#v", w)
	}
}

func TestRegistryRejectsDuplicatesAndNil(t *testing.T) {
	r := NewRegistry[widget]()
	f := func(map[string]any) (widget, error) { return gauge{}, nil }

	if err := r.Register("gauge", f); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("gauge", f); err == nil {
		t.Fatalf("duplicate registration must fail")
	}
	if err := r.Register("nil", nil); err == nil {
		t.Fatalf("nil factory must be rejected")
	}
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry[widget]()
	_, err := r.Create(ModuleConfig{Type: "missing"})
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error should name the unknown type: %v", err)
	}
}

func TestDecodeUsesJSONTags(t *testing.T) {
	var g gauge
	if err := Decode(map[string]any{"scale": 7}, &g); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Scale != 7 {
		t.Fatalf("Scale = %d, want 7", g.Scale)
	}
}
