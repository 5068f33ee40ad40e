package normalize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Cámara de Seguridad", "camara de seguridad"},
		{"NIÑOS", "ninos"},
		{"Colchón Sommier", "colchon sommier"},
		{"  Auto  ", "  auto  "},
		{"Çedilla ü", "cedilla u"},
	}
	for _, tc := range tests {
		if got := Text(tc.in); got != tc.want {
			t.Errorf("Text(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{"Televisor Sañyo 55\"", "ÁÉÍÓÚ ñ", "already plain", "mixed CASE Ünïcödé", "日本語"}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  Remera\tManga  Corta\nHOMBRE ")
	want := []string{"remera", "manga", "corta", "hombre"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if toks := Tokens("   "); len(toks) != 0 {
		t.Errorf("expected no tokens, got %v", toks)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hombres", "hombre"},
		{"mujeres", "mujer"},
		{"ninos", "nino"},
		{"ninas", "nina"},
		{"colores", "color"},
		{"camisas", "camisa"},
		{"mes", "mes"},
		{"gas", "gas"},
		{"clases", "clase"},
		{"dress", "dress"},
		{"jean", "jean"},
		{"Hombres", "hombre"},
		{"CAMIONES", "camion"},
		{"Niñas", "nina"},
		{"Pantalónes", "pantalon"},
	}
	for _, tc := range tests {
		if got := Stem(tc.in); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStem_Stable(t *testing.T) {
	words := []string{
		"hombres", "mujeres", "carteras", "clases", "glass", "dress", "boss",
		"meses", "tres", "sss", "eses", "ssses", "pantalones", "zapatillas", "es", "s", "",
	}
	for _, w := range words {
		once := Stem(w)
		if twice := Stem(once); twice != once {
			t.Errorf("Stem not stable for %q: %q then %q", w, once, twice)
		}
	}
}

func TestStemTokens(t *testing.T) {
	got := StemTokens("Camisas Hombres Blancas")
	want := []string{"camisa", "hombre", "blanca"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
