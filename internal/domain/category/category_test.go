package category

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

func withPath(names ...string) *product.Product {
	p := &product.Product{ID: "1", Title: "x"}
	for _, n := range names {
		p.CategoryPath = append(p.CategoryPath, product.Category{Name: n})
	}
	return p
}

func TestMatchesPrefix(t *testing.T) {
	p := withPath("Vehículos", "Motos", "Calle")
	tests := []struct {
		name   string
		prefix []string
		want   bool
	}{
		{"empty prefix", nil, true},
		{"root", []string{"vehiculos"}, true},
		{"two levels accented", []string{"Vehículos", "MOTOS"}, true},
		{"full path", []string{"vehiculos", "motos", "calle"}, true},
		{"longer than path", []string{"vehiculos", "motos", "calle", "naked"}, false},
		{"sibling", []string{"vehiculos", "autos"}, false},
		{"substring is not a match", []string{"vehiculo"}, false},
		{"not anchored at root", []string{"motos"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesPrefix(p, tc.prefix); got != tc.want {
				t.Errorf("MatchesPrefix(%v) = %v, want %v", tc.prefix, got, tc.want)
			}
		})
	}
}

func TestMatchesPrefix_OwnPathAlwaysMatches(t *testing.T) {
	paths := [][]string{
		{"Tecnología"},
		{"Hogar", "Dormitorio", "Camas y Colchones"},
		{"Deportes y Fitness", "Boxeo y Artes Marciales", "Bolsas de Boxeo"},
	}
	for _, path := range paths {
		p := withPath(path...)
		for i := 0; i <= len(path); i++ {
			if !MatchesPrefix(p, path[:i]) {
				t.Errorf("expected %v to match its own prefix %v", path, path[:i])
			}
		}
	}
}

func TestMatchesPrefix_NoCategories(t *testing.T) {
	p := &product.Product{ID: "1"}
	if MatchesPrefix(p, []string{"hogar"}) {
		t.Error("product without categories must not match a non-empty prefix")
	}
	if !MatchesPrefix(p, nil) {
		t.Error("empty prefix must match")
	}
}

func TestRegistry_FirstRuleWins(t *testing.T) {
	r := Default()
	// "pickup" appears in both the car and truck rules; the car rule is first.
	got, ok := r.Lookup([]string{"pickup"})
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"vehiculos", "autos"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := Default()
	tests := []struct {
		q    string
		want []string
	}{
		{"queso cremoso", []string{"supermercado", "fiambres", "quesos"}},
		{"smarttv", []string{"tecnologia", "televisores"}},
		{"computadora de escritorio", []string{"tecnologia", "pcs"}},
		{"taladro percutor", []string{"herramientas", "electricas"}},
		{"mesa ratonera", []string{"hogar", "living"}},
	}
	for _, tc := range tests {
		got, ok := r.Lookup(normalize.Tokens(tc.q))
		if !ok {
			t.Errorf("expected %q to match", tc.q)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Lookup(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
	if _, ok := r.Lookup(normalize.Tokens("xyz123")); ok {
		t.Error("expected no match for unknown token")
	}
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r := Default()
	got, _ := r.Lookup([]string{"moto"})
	got[0] = "mutated"
	again, _ := r.Lookup([]string{"moto"})
	if again[0] != "vehiculos" {
		t.Errorf("registry path was mutated: %v", again)
	}
}

func TestHome_Priority(t *testing.T) {
	h := Home()
	got, ok := h.Lookup(normalize.Tokens("cama para perro"))
	if !ok {
		t.Fatal("expected a match")
	}
	if want := []string{"hogar", "mascotas"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected pets to win, got %v", got)
	}
}
