package headphone

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
	for _, q := range []string{"auriculares sony", "headset gamer", "airpods", "earbuds xiaomi"} {
		if !e.IsQuery(q) {
			t.Errorf("expected %q to be a headphone query", q)
		}
	}
	for _, q := range []string{"parlante jbl", "celular sony", ""} {
		if e.IsQuery(q) {
			t.Errorf("expected %q not to be a headphone query", q)
		}
	}
}

func TestParse(t *testing.T) {
	s := New().Parse("Auriculares Sony inalambricos over ear con cancelacion de ruido").(*Specs)
	if s.Brand != "sony" {
		t.Errorf("expected brand sony, got %q", s.Brand)
	}
	if s.Form != FormOverEar {
		t.Errorf("expected over-ear, got %q", s.Form)
	}
	if s.Wireless == nil || !*s.Wireless {
		t.Errorf("expected wireless, got %v", s.Wireless)
	}
	if !s.ANC {
		t.Error("expected anc")
	}
}

func TestParse_Wired(t *testing.T) {
	s := New().Parse("auriculares con cable").(*Specs)
	if s.Wireless == nil || *s.Wireless {
		t.Errorf("expected wired, got %v", s.Wireless)
	}
}

func TestParse_AirpodsAreAppleInEar(t *testing.T) {
	s := New().Parse("airpods pro").(*Specs)
	if s.Brand != "apple" || s.Form != FormInEar {
		t.Errorf("expected apple in-ear, got %+v", s)
	}
}

func TestMatches_BrandIsHard(t *testing.T) {
	s := &Specs{Brand: "xiaomi"}
	if !s.Matches(item("Auriculares Redmi Buds 4")) {
		t.Error("expected redmi to satisfy xiaomi")
	}
	if s.Matches(item("Auriculares Sony WH-1000")) {
		t.Error("expected sony not to satisfy xiaomi")
	}
}

func TestSoftMatches(t *testing.T) {
	w := true
	s := &Specs{Wireless: &w, Form: FormInEar}
	if !s.SoftMatches(item("Auriculares In Ear Bluetooth TWS")) {
		t.Error("expected wireless in-ear match")
	}
	if s.SoftMatches(item("Auriculares Vincha con cable")) {
		t.Error("expected wired over-ear to miss")
	}
}

func TestIsProduct(t *testing.T) {
	e := New()
	if !e.IsProduct(item("x", "Tecnología", "Auriculares")) {
		t.Error("expected category match")
	}
	if !e.IsProduct(item("Auriculares Bluetooth JBL Tune")) {
		t.Error("expected text match")
	}
	if e.IsProduct(item("Almohadillas de repuesto para auriculares")) {
		t.Error("expected accessory rejection")
	}
}
