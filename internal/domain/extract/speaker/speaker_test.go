package speaker

import (
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

func item(title string, cats ...string) *product.Product {
	p := &product.Product{ID: "1", Title: title}
	for _, c := range cats {
		p.CategoryPath = append(p.CategoryPath, product.Category{Name: c})
	}
	return p
}

func TestIsQuery(t *testing.T) {
	e := New()
	tests := []struct {
		q    string
		want bool
	}{
		{"parlante jbl", true},
		{"barra de sonido samsung", true},
		{"subwoofer 10 pulgadas", true},
		{"parlante con luces led", true},
		{"jbl bluetooth", true},
		{"sony portatil", true},
		{"auriculares jbl bluetooth", false},
		{"samsung bluetooth celular", false},
		{"jbl", false},
		{"barra de cortina", false},
	}
	for _, tc := range tests {
		if got := e.IsQuery(tc.q); got != tc.want {
			t.Errorf("IsQuery(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	s := New().Parse("Parlante JBL bluetooth 20w portatil con microfono").(*Specs)
	if s.Brand != "jbl" {
		t.Errorf("expected brand jbl, got %q", s.Brand)
	}
	if s.Connectivity != "bluetooth" {
		t.Errorf("expected bluetooth, got %q", s.Connectivity)
	}
	if s.Watts != 20 {
		t.Errorf("expected 20w, got %d", s.Watts)
	}
	if s.Type != TypePortable {
		t.Errorf("expected portable type, got %q", s.Type)
	}
	if !s.WantsMic {
		t.Error("expected mic preference")
	}
}

func TestParse_Soundbar(t *testing.T) {
	s := New().Parse("barra de sonido 5.1 hdmi soundcore").(*Specs)
	if s.Type != TypeSoundbar {
		t.Errorf("expected soundbar, got %q", s.Type)
	}
	if s.Channels != "5.1" {
		t.Errorf("expected 5.1, got %q", s.Channels)
	}
	if s.Connectivity != "hdmi" {
		t.Errorf("expected hdmi, got %q", s.Connectivity)
	}
	if s.Brand != "anker" {
		t.Errorf("expected anker, got %q", s.Brand)
	}
}

func TestParse_BTAlias(t *testing.T) {
	s := New().Parse("parlante bt").(*Specs)
	if s.Connectivity != "bluetooth" {
		t.Errorf("expected bluetooth, got %q", s.Connectivity)
	}
}

func TestMatches(t *testing.T) {
	s := New().Parse("parlante jbl 20w").(*Specs)
	tests := []struct {
		title string
		want  bool
	}{
		{"Parlante JBL Go 3 Bluetooth 20W", true},
		{"Parlante JBL Charge 5 Bluetooth", true},
		{"Parlante JBL Flip 6 30W", false},
		{"Parlante Sony 20W", false},
		{"Funda para Parlante JBL 20W", false},
	}
	for _, tc := range tests {
		if got := s.Matches(item(tc.title)); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestMatches_AnkerAlias(t *testing.T) {
	s := &Specs{Brand: "anker"}
	if !s.Matches(item("Parlante Soundcore Motion 300")) {
		t.Error("expected soundcore to satisfy anker")
	}
}

func TestSoftMatches(t *testing.T) {
	s := &Specs{WantsWaterproof: true}
	if !s.SoftMatches(item("Parlante JBL Flip IP67")) {
		t.Error("expected ip67 to count as waterproof")
	}
	if s.SoftMatches(item("Parlante de escritorio")) {
		t.Error("expected no waterproof match")
	}
}

func TestIsProduct(t *testing.T) {
	e := New()
	if !e.IsProduct(item("x", "Tecnología", "Parlantes")) {
		t.Error("expected category match")
	}
	if !e.IsProduct(item("Barra de sonido LG SN4")) {
		t.Error("expected text match")
	}
	if e.IsProduct(item("Soporte de pared para parlante")) {
		t.Error("expected accessory rejection")
	}
}
