package attr

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Gender values.
const (
	GenderUnisex = "unisex"
	GenderMale   = "male"
	GenderFemale = "female"
	GenderKids   = "kids"
)

// Sleeve values.
const (
	SleeveShort = "short"
	SleeveLong  = "long"
)

var (
	unisexRe = regexp.MustCompile(`\bunisex\b`)
	maleRe   = regexp.MustCompile(`\b(?:hombre|varon|masculin[oa]?|men|caballero)\b`)
	femaleRe = regexp.MustCompile(`\b(?:mujer|dama|femenin[oa]?|women|ladi|lady)\b`)
	kidsRe   = regexp.MustCompile(`\b(?:nin[oa]|kid|infantil|juvenil)\b`)

	shortSleeveRe = regexp.MustCompile(`\bmanga\s*corta\b|\bshort\s*sleeve\b`)
	longSleeveRe  = regexp.MustCompile(`\bmanga\s*larga\b|\blong\s*sleeve\b`)
)

// Gender extracts a declared gender from free text. Plurals are folded by
// stemming, so "hombres" and "hombre" agree. Returns "" when undeclared.
func Gender(s string) string {
	n := normalize.Text(s)
	if unisexRe.MatchString(n) {
		return GenderUnisex
	}
	stemmed := strings.Join(normalize.StemTokens(n), " ")
	switch {
	case maleRe.MatchString(stemmed):
		return GenderMale
	case femaleRe.MatchString(stemmed):
		return GenderFemale
	case kidsRe.MatchString(stemmed):
		return GenderKids
	}
	return ""
}

// ShortSleeve reports a "manga corta" / "short sleeve" mention.
func ShortSleeve(text string) bool { return shortSleeveRe.MatchString(text) }

// LongSleeve reports a "manga larga" / "long sleeve" mention.
func LongSleeve(text string) bool { return longSleeveRe.MatchString(text) }

// Sleeve returns the sleeve length declared in text, short first.
func Sleeve(text string) string {
	switch {
	case ShortSleeve(text):
		return SleeveShort
	case LongSleeve(text):
		return SleeveLong
	}
	return ""
}

// Clothing brands shared by the garment extractors.
var ApparelBrands = NewAliases(map[string]string{
	"nike":          "nike",
	"adidas":        "adidas",
	"puma":          "puma",
	"reebok":        "reebok",
	"fila":          "fila",
	"vans":          "vans",
	"levis":         "levis",
	"levi":          "levis",
	"tommy":         "tommy",
	"tommyhilfiger": "tommy",
	"underarmour":   "under armour",
	"under":         "under armour",
	"armour":        "under armour",
	"newbalance":    "new balance",
	"new balance":   "new balance",
	"nb":            "new balance",
	"zara":          "zara",
	"hm":            "hm",
	"hym":           "hm",
})

// GarmentColors maps color words, Spanish and English, to Spanish names.
var GarmentColors = NewAliases(map[string]string{
	"negro": "negro", "black": "negro",
	"blanco": "blanco", "white": "blanco",
	"gris": "gris", "gray": "gris", "grey": "gris",
	"rojo": "rojo", "red": "rojo",
	"azul": "azul", "blue": "azul",
	"verde": "verde", "green": "verde",
	"celeste":  "celeste",
	"amarillo": "amarillo", "yellow": "amarillo",
	"rosa": "rosa", "pink": "rosa",
	"beige": "beige", "arena": "beige",
	"marron": "marron", "brown": "marron",
	"bordo": "bordo",
})

// GarmentMaterials maps fabric words to canonical names.
var GarmentMaterials = NewAliases(map[string]string{
	"algodon": "algodon", "cotton": "algodon",
	"poliester": "poliester", "polyester": "poliester",
	"lino": "lino", "linen": "lino",
	"modal":   "modal",
	"viscosa": "viscosa", "rayon": "viscosa",
	"lycra":    "lycra",
	"elastano": "elastano", "spandex": "elastano",
})

var (
	navyRe     = regexp.MustCompile(`\bazul\s*marino\b`)
	darkGreyRe = regexp.MustCompile(`\bgris\s*oscuro\b`)
)

// GarmentColorList collects colors from tokens, folding "azul marino" and
// "gris oscuro" into their base colors.
func GarmentColorList(tokens []string) []string {
	colors := GarmentColors.Collect(tokens)
	joined := strings.Join(tokens, " ")
	if navyRe.MatchString(joined) && !contains(colors, "azul") {
		colors = append(colors, "azul")
	}
	if darkGreyRe.MatchString(joined) && !contains(colors, "gris") {
		colors = append(colors, "gris")
	}
	return colors
}

// ContainsAll reports whether text contains every value.
func ContainsAll(text string, values []string) bool {
	for _, v := range values {
		if !strings.Contains(text, v) {
			return false
		}
	}
	return true
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

var garmentWords = NewStemmedSet(
	"manga", "corta", "larga", "short", "long", "sleeve", "temporada",
	"verano", "invierno", "primavera", "otono", "summer", "winter", "spring", "autumn", "fall",
	"vestir", "formal", "oficina", "elegante", "talle", "oscuro", "marino",
)

// OnlyGarmentAttributes reports whether every token describes a garment
// (color, material, brand, gender, season, sleeve, fit) or is a stopword.
// Detectors use it so that a bare "mujer" or "verano" next to an unrelated
// noun is not read as clothing.
func OnlyGarmentAttributes(tokens []string) bool {
	for _, t := range tokens {
		if text.IsStopword(t) || garmentWords.Has(t) || garmentWords.Has(normalize.Stem(t)) {
			continue
		}
		if _, ok := GarmentColors.Lookup(t); ok {
			continue
		}
		if _, ok := GarmentMaterials.Lookup(t); ok {
			continue
		}
		if _, ok := ApparelBrands.Lookup(t); ok {
			continue
		}
		if Gender(t) != "" {
			continue
		}
		return false
	}
	return true
}
