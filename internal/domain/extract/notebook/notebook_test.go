package notebook

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
		{"notebook lenovo 16gb 512gb", true},
		{"lenovo i5", true},
		{"lenovo 8gb", true},
		{"samsung 8gb", false},
		{"samsung ryzen 7", true},
		{"lenovo tab m10", false},
		{"macbook air", true},
		{"celular notebook", false},
	}
	for _, tc := range tests {
		if got := e.IsQuery(tc.q); got != tc.want {
			t.Errorf("IsQuery(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestParse_RAMAndStorage(t *testing.T) {
	s := New().Parse("notebook lenovo 16gb 512gb").(*Specs)
	if s.Brand != "lenovo" {
		t.Errorf("expected brand lenovo, got %q", s.Brand)
	}
	if s.RAMGB != 16 {
		t.Errorf("expected ram 16, got %d", s.RAMGB)
	}
	if s.Storage == nil || s.Storage.Value != 512 || s.Storage.Unit != "gb" {
		t.Errorf("expected storage 512gb, got %+v", s.Storage)
	}
}

func TestParse_TerabyteAndCPU(t *testing.T) {
	s := New().Parse("macbook 1tb ryzen 7").(*Specs)
	if s.Brand != "apple" {
		t.Errorf("expected brand apple, got %q", s.Brand)
	}
	if s.Storage == nil || s.Storage.String() != "1tb" {
		t.Errorf("expected storage 1tb, got %+v", s.Storage)
	}
	if s.CPU == nil || s.CPU.Brand != "amd" || s.CPU.Tier != "ryzen7" {
		t.Errorf("expected amd ryzen7, got %+v", s.CPU)
	}
	if s.RAMGB != 0 {
		t.Errorf("expected no ram, got %d", s.RAMGB)
	}
}

func TestMatches(t *testing.T) {
	s := New().Parse("notebook lenovo 16gb 512gb").(*Specs)
	cats := []string{"Tecnología", "Notebooks"}
	if !s.Matches(item("Notebook Lenovo IdeaPad 5 Ryzen 7 16GB 512GB SSD", cats...)) {
		t.Error("expected full match")
	}
	if s.Matches(item("Notebook Lenovo IdeaPad 3 8GB 512GB", cats...)) {
		t.Error("expected product without 16gb to be excluded")
	}
	if s.Matches(item("Notebook Lenovo IdeaPad 3 16GB 256GB", cats...)) {
		t.Error("expected product without 512gb to be excluded")
	}
}

func TestMatches_Ryzen(t *testing.T) {
	s := New().Parse("notebook ryzen 5").(*Specs)
	if !s.Matches(item("Notebook Asus Vivobook AMD Ryzen 5 7520U")) {
		t.Error("expected ryzen 5 match")
	}
	if s.Matches(item("Notebook Asus Vivobook AMD Ryzen 7 7730U")) {
		t.Error("expected ryzen 7 to be excluded")
	}
}
