package search

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/search/request"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
)

func item(id, title string, cats ...string) product.Product {
	p := product.Product{ID: id, Title: title}
	for _, c := range cats {
		p.CategoryPath = append(p.CategoryPath, product.Category{Name: c})
	}
	return p
}

func fixtureCatalog() []product.Product {
	return []product.Product{
		item("1", "Yamaha FZ 150", "Vehiculos", "Motos"),
		item("2", "Honda CB500", "Vehiculos", "Motos"),
		item("3", "Apple iPhone 13 Pro 256GB", "Tecnologia", "Celulares"),
		item("4", "iPhone 13 128GB", "Tecnologia", "Celulares"),
		item("5", "Camara IP Vigilancia WiFi", "Tecnologia", "Camaras"),
		item("6", "Camara Web HD", "Tecnologia", "Camaras"),
		item("7", "Remera Manga Larga Hombre", "Ropa", "Remeras"),
		item("8", "Remera Manga Corta Hombre Algodon", "Ropa", "Remeras"),
		item("9", "Notebook Lenovo IdeaPad 16GB 512GB SSD", "Tecnologia", "Notebooks"),
		item("10", "Notebook Lenovo IdeaPad 8GB 256GB", "Tecnologia", "Notebooks"),
		item("11", "Heladera Samsung No Frost 300 Litros", "Hogar", "Heladeras"),
	}
}

func newTestEngine() *Engine { return NewEngine(NewDetector()) }

func runSearch(t *testing.T, e *Engine, catalog []product.Product, q string, limit int) result.Result {
	t.Helper()
	req, err := request.New(q, limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return e.Search(catalog, &req)
}

func ids(items []*product.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestSearch_Scenarios(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		query string
		kind  intent.Kind
		want  []string
	}{
		{"moto honda", intent.Moto, []string{"2"}},
		{"camara de seguridad", intent.Camera, []string{"5"}},
		{"iphone 13 pro 256gb", intent.Phone, []string{"3"}},
		{"remera manga corta hombre", intent.TShirt, []string{"8"}},
		{"xyz123", intent.Generic, []string{}},
		{"notebook lenovo 16gb 512gb", intent.Notebook, []string{"9"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := runSearch(t, e, fixtureCatalog(), tt.query, 10)
			if res.Intent().Kind != tt.kind {
				t.Errorf("expected intent %q, got %q", tt.kind, res.Intent().Kind)
			}
			if got := ids(res.Items()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected items %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearch_MotoHondaRanksBrandFirst(t *testing.T) {
	catalog := []product.Product{
		item("a", "Moto Zanella 110", "Vehiculos", "Motos"),
		item("b", "Honda CB500", "Vehiculos", "Motos", "Calle"),
		item("c", "Casco Honda", "Accesorios"),
	}
	res := runSearch(t, newTestEngine(), catalog, "moto honda", 4)

	if res.Intent().Brand != "honda" {
		t.Errorf("expected brand honda, got %q", res.Intent().Brand)
	}
	if len(res.Items()) == 0 || res.Items()[0].ID != "b" {
		t.Fatalf("expected b first, got %v", ids(res.Items()))
	}
	if want := []string{"Vehiculos", "Motos", "Calle"}; !reflect.DeepEqual(res.Breadcrumb(), want) {
		t.Errorf("expected breadcrumb %v, got %v", want, res.Breadcrumb())
	}
}

func TestSearch_NoMatchHasNoBreadcrumb(t *testing.T) {
	res := runSearch(t, newTestEngine(), fixtureCatalog(), "xyz123", 4)
	if res.Breadcrumb() != nil {
		t.Errorf("expected no breadcrumb, got %v", res.Breadcrumb())
	}
	if res.Intent().HasHint() {
		t.Errorf("expected no hint, got %v", res.Intent().CategoryHint)
	}
}

func TestSearch_CategoryFailOpen(t *testing.T) {
	res := runSearch(t, newTestEngine(), fixtureCatalog(), "camara de seguridad", 4)
	if !res.FellBack(result.StageCategory) {
		t.Errorf("expected category fallback, got %v", res.Fallbacks())
	}
}

func TestSearch_SoftFilterFailOpen(t *testing.T) {
	res := runSearch(t, newTestEngine(), fixtureCatalog(), "moto honda 2030", 4)
	if !res.FellBack(result.StageSoft) {
		t.Errorf("expected soft fallback, got %v", res.Fallbacks())
	}
	if got := ids(res.Items()); !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf("expected [2], got %v", got)
	}
}

func TestSearch_TextFallbackWithHint(t *testing.T) {
	res := runSearch(t, newTestEngine(), fixtureCatalog(), "heladera xyz", 4)
	if !res.FellBack(result.StageText) {
		t.Errorf("expected text fallback, got %v", res.Fallbacks())
	}
	if got := ids(res.Items()); !reflect.DeepEqual(got, []string{"11"}) {
		t.Errorf("expected [11], got %v", got)
	}
}

func TestSearch_EmptyQueryPassThrough(t *testing.T) {
	catalog := fixtureCatalog()
	res := runSearch(t, newTestEngine(), catalog, "", 4)

	if res.Intent().Kind != intent.Generic {
		t.Errorf("expected generic intent, got %q", res.Intent().Kind)
	}
	if got := ids(res.Items()); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("expected the first four products, got %v", got)
	}
	if len(res.Fallbacks()) != 0 {
		t.Errorf("expected no fallbacks, got %v", res.Fallbacks())
	}
}

func TestSearch_ResultBound(t *testing.T) {
	e := newTestEngine()
	queries := []string{"", "moto", "remera", "notebook", "xyz", "camara", "heladera xyz"}
	for _, q := range queries {
		for limit := 0; limit <= 5; limit++ {
			t.Run(fmt.Sprintf("%s/%d", q, limit), func(t *testing.T) {
				res := runSearch(t, e, fixtureCatalog(), q, limit)
				if len(res.Items()) > limit {
					t.Errorf("expected at most %d items, got %d", limit, len(res.Items()))
				}
			})
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	e := newTestEngine()
	res := runSearch(t, e, fixtureCatalog(), "remera hombre", 10)
	first := ids(res.Items())
	for i := 0; i < 3; i++ {
		again := runSearch(t, e, fixtureCatalog(), "remera hombre", 10)
		if got := ids(again.Items()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestSearch_EmptyCatalog(t *testing.T) {
	res := runSearch(t, newTestEngine(), nil, "moto honda", 4)
	if len(res.Items()) != 0 {
		t.Errorf("expected no items, got %d", len(res.Items()))
	}
	if len(res.Fallbacks()) != 0 {
		t.Errorf("expected no fallbacks on an empty catalog, got %v", res.Fallbacks())
	}
}

func TestFailOpen(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	got, reverted := failOpen([]int{1, 2, 3, 4}, even)
	if reverted || !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("expected [2 4] without revert, got %v %v", got, reverted)
	}

	got, reverted = failOpen([]int{1, 3}, even)
	if !reverted || !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("expected input back with revert, got %v %v", got, reverted)
	}

	got, reverted = failOpen([]int{}, even)
	if reverted || len(got) != 0 {
		t.Errorf("expected empty without revert, got %v %v", got, reverted)
	}
}
