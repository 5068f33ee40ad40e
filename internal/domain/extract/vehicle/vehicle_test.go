package vehicle

import (
	"reflect"
	"sort"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

func item(title string, cats ...string) *product.Product {
	p := &product.Product{ID: "1", Title: title}
	for _, c := range cats {
		p.CategoryPath = append(p.CategoryPath, product.Category{Name: c})
	}
	return p
}

func checkQueries(t *testing.T, e intent.Extractor, want map[string]bool) {
	t.Helper()
	for q, w := range want {
		if got := e.IsQuery(q); got != w {
			t.Errorf("%s IsQuery(%q) = %v, want %v", e.Kind(), q, got, w)
		}
	}
}

func checkProducts(t *testing.T, e intent.Extractor, want map[*product.Product]bool) {
	t.Helper()
	for p, w := range want {
		if got := e.IsProduct(p); got != w {
			t.Errorf("%s IsProduct(%q) = %v, want %v", e.Kind(), p.Title, got, w)
		}
	}
}

func sameSet(a, b []string) bool {
	a = append([]string(nil), a...)
	b = append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)
	return reflect.DeepEqual(a, b)
}

func TestMoto_IsQuery(t *testing.T) {
	checkQueries(t, NewMoto(), map[string]bool{
		"moto honda":     true,
		"Motos usadas":   true,
		"yamaha fz":      true,
		"honda 150cc":    true,
		"honda civic":    false,
		"toyota corolla": false,
	})
}

func TestMoto_Parse(t *testing.T) {
	e := NewMoto()
	s, ok := e.Parse("moto honda 2021 150cc").(*Specs)
	if !ok {
		t.Fatalf("expected *Specs, got %T", e.Parse("moto honda 2021 150cc"))
	}
	if s.Brand != "honda" {
		t.Errorf("expected brand honda, got %q", s.Brand)
	}
	if s.Filters.Year != 2021 || s.Filters.CC != 150 {
		t.Errorf("expected year 2021 and 150cc, got %+v", s.Filters)
	}

	if b := e.Parse("moto harley davidson").BrandName(); b != "harley" {
		t.Errorf("expected brand harley, got %q", b)
	}
	if b := e.Parse("royal enfield classic").BrandName(); b != "royal" {
		t.Errorf("expected brand royal, got %q", b)
	}
	if hint := e.CategoryHint(s); !reflect.DeepEqual(hint, []string{"vehiculos", "motos"}) {
		t.Errorf("expected [vehiculos motos], got %v", hint)
	}
}

func TestMoto_IsProduct(t *testing.T) {
	checkProducts(t, NewMoto(), map[*product.Product]bool{
		item("Honda CB500", "Vehiculos", "Motos"): true,
		item("Moto Zanella 110"):                  true,
		item("Honda Civic", "Vehiculos", "Autos"): false,
	})
}

func TestSpecs_BrandIsHard(t *testing.T) {
	s := NewMoto().Parse("moto honda").(*Specs)
	if !s.Matches(item("Honda CB500", "Vehiculos", "Motos")) {
		t.Error("expected honda to match")
	}
	if s.Matches(item("Yamaha FZ", "Vehiculos", "Motos")) {
		t.Error("expected yamaha to be rejected")
	}

	vw := NewCar().Parse("vw gol").(*Specs)
	if vw.Brand != "volkswagen" {
		t.Errorf("expected brand volkswagen, got %q", vw.Brand)
	}
	for _, title := range []string{"VW Gol Trend", "Volkswagen Gol Trend"} {
		if !vw.Matches(item(title)) {
			t.Errorf("expected %q to match volkswagen", title)
		}
	}

	if !(&Specs{}).Matches(item("Cualquier auto")) {
		t.Error("expected empty specs to match")
	}
}

func TestSpecs_SoftMatches(t *testing.T) {
	s := NewTruck().Parse("camioneta 4x4 diesel").(*Specs)
	if !s.SoftMatches(item("Ford Ranger 4x4 Diesel")) {
		t.Error("expected 4x4 diesel to soft-match")
	}
	if s.SoftMatches(item("Ford Ranger 4x2 Nafta")) {
		t.Error("expected 4x2 nafta to fail the soft filter")
	}
	if !s.Matches(item("Ford Ranger 4x2 Nafta")) {
		t.Error("expected hard matcher to ignore vehicle attributes")
	}
}

func TestTruck(t *testing.T) {
	e := NewTruck()
	checkQueries(t, e, map[string]bool{
		"camioneta toyota": true,
		"hilux srv":        true,
		"auto fiat":        false,
	})

	brands := map[string]string{
		"camioneta toyota":   "toyota",
		"camioneta ram 1500": "ram",
		"memoria ram 16gb":   "",
	}
	for q, want := range brands {
		if got := e.Parse(q).BrandName(); got != want {
			t.Errorf("Parse(%q) brand = %q, want %q", q, got, want)
		}
	}

	checkProducts(t, e, map[*product.Product]bool{
		item("Toyota Hilux SRV"):                    true,
		item("Ram 1500", "Vehiculos", "Camionetas"): true,
		item("Fiat Cronos"):                         false,
	})

	want := []string{"camioneta", "camionetas", "pickup", "pickups", "pick-up", "chata", "4x4"}
	if got := e.DropTokens("camioneta 4x4"); !sameSet(got, want) {
		t.Errorf("expected drop tokens %v, got %v", want, got)
	}
}

func TestCar(t *testing.T) {
	e := NewCar()
	checkQueries(t, e, map[string]bool{
		"auto usado":        true,
		"toyota corolla":    true,
		"VW Gol":            true,
		"auriculares audio": false,
	})

	if b := e.Parse("toyota corolla 2018").BrandName(); b != "toyota" {
		t.Errorf("expected brand toyota, got %q", b)
	}
	if hint := e.CategoryHint(nil); !reflect.DeepEqual(hint, []string{"vehiculos", "autos"}) {
		t.Errorf("expected [vehiculos autos], got %v", hint)
	}

	checkProducts(t, e, map[*product.Product]bool{
		item("Corolla XEI", "Vehiculos", "Autos"): true,
		item("Toyota Corolla XEI"):                true,
		item("Auto a control remoto"):             true,
		item("Funda cubre volante Ford"):          false,
		item("Auriculares Audio Technica"):        false,
	})

	want := []string{"auto", "autos", "vehiculo", "vehiculos", "2018"}
	if got := e.DropTokens("auto 2018"); !sameSet(got, want) {
		t.Errorf("expected drop tokens %v, got %v", want, got)
	}
}
