package tv

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
		{"smart tv 50", true},
		{"Televisor Samsung 55 4K", true},
		{"samsung 55 pulgadas", true},
		{"smart 65 4k", true},
		{"smart", false},
		{"smartwatch samsung", false},
		{"pantalla celular a54", false},
		{"tablet 10 pulgadas", false},
		{"monitor 27 pulgadas", false},
		{"barra de sonido para tv", false},
		{"auriculares para tv", false},
	}
	for _, tc := range tests {
		if got := e.IsQuery(tc.q); got != tc.want {
			t.Errorf("IsQuery(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		q    string
		want Specs
	}{
		{"smart tv 50 4k", Specs{Inches: 50, Resolution: Res4K}},
		{"tv 32\" hd led", Specs{Inches: 32, Resolution: ResHD, Panel: "led"}},
		{"televisor 55 pulgadas oled uhd", Specs{Inches: 55, Resolution: Res4K, Panel: "oled"}},
		{"tv full hd", Specs{Resolution: ResFullHD}},
		{"tele qled 8k", Specs{Resolution: Res8K, Panel: "qled"}},
	}
	for _, tc := range tests {
		got := *New().Parse(tc.q).(*Specs)
		if got != tc.want {
			t.Errorf("Parse(%q): expected %+v, got %+v", tc.q, tc.want, got)
		}
	}
}

func TestMatches(t *testing.T) {
	s := New().Parse("smart tv 50 4k").(*Specs)
	tests := []struct {
		title string
		want  bool
	}{
		{`Smart TV Samsung 50" 4K UHD`, true},
		{"Smart TV LG 50 pulgadas UHD", true},
		{"Smart TV Samsung 55\" 4K", false},
		{"Smart TV Noblex 50\" Full HD", false},
		{"Smart TV 4K sin medida", false},
	}
	for _, tc := range tests {
		if got := s.Matches(item(tc.title)); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestMatches_LEDPanelExcludesOLED(t *testing.T) {
	s := &Specs{Panel: "led"}
	if !s.Matches(item("TV LED 32")) {
		t.Error("expected LED panel to match")
	}
	if s.Matches(item("TV OLED 55")) {
		t.Error("expected OLED panel not to satisfy led")
	}
}

func TestIsProduct(t *testing.T) {
	e := New()
	if !e.IsProduct(item("Cualquier", "Tecnología", "Televisores")) {
		t.Error("expected category match")
	}
	if !e.IsProduct(item("Smart TV Philips 43")) {
		t.Error("expected text match")
	}
	if e.IsProduct(item("Soporte de pared para monitor")) {
		t.Error("expected no match")
	}
}
