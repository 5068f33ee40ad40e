// Package tshirt detects t-shirt (remera) queries.
//
// Brand is a hard filter. Sleeve, gender, season, color and material only
// reject a product that declares a conflicting value; an undeclared
// attribute passes, and a unisex product satisfies any gender.
package tshirt

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Seasons.
const (
	SeasonSummer = "summer"
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonAutumn = "autumn"
)

var (
	tshirtWords = attr.NewStemmedSet(
		"remera", "remeras", "camiseta", "camisetas", "playera", "playeras",
		"tshirt", "tshirts", "t-shirt", "t-shirts", "tee", "tees",
	)
	negativeWords = attr.NewStemmedSet(
		"buzo", "hoodie", "campera", "abrigo", "sweater", "sueter", "pantalon", "jean",
		"jogger", "short", "bermuda", "zapatilla", "calzado", "botin", "botines",
		"camisa", "camisola", "blusa", "cartera", "billetera", "bolso", "mochila",
	)

	productRe  = regexp.MustCompile(`remera|camiseta|t-?shirt|\btees?\b`)
	negativeRe = attr.WordRe(
		"buzos?", "hoodie", "camperas?", "abrigos?", "sweater", "sueter", "pantalon(?:es)?", "jeans?",
		"joggers?", "shorts?", "bermudas?", "zapatillas?", "calzado", "botin(?:es)?",
	)

	summerRe = attr.WordRe("verano", "summer")
	winterRe = attr.WordRe("invierno", "winter")
	springRe = attr.WordRe("primavera", "spring")
	autumnRe = attr.WordRe("otono", "autumn", "fall")
)

// Specs are the t-shirt attributes parsed from a query.
type Specs struct {
	Brand     string   `json:"brand,omitempty"`
	Sleeve    string   `json:"sleeve,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Season    string   `json:"season,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Materials []string `json:"materials,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches implements intent.Specs.
func (s *Specs) Matches(p *product.Product) bool {
	if !isTShirt(p) {
		return false
	}
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	switch s.Sleeve {
	case attr.SleeveShort:
		if attr.LongSleeve(t) {
			return false
		}
	case attr.SleeveLong:
		if attr.ShortSleeve(t) {
			return false
		}
	}
	if s.Gender != "" {
		if g := attr.Gender(t); g != "" && g != s.Gender && g != attr.GenderUnisex {
			return false
		}
	}
	if s.Season != "" {
		if season := Season(t); season != "" && season != s.Season {
			return false
		}
	}
	if len(s.Colors) > 0 && attr.GarmentColors.DeclaresAny(t) && !attr.ContainsAll(t, s.Colors) {
		return false
	}
	if len(s.Materials) > 0 && attr.GarmentMaterials.DeclaresAny(t) && !attr.ContainsAll(t, s.Materials) {
		return false
	}
	return true
}

// Season returns the season declared in text, inferring summer from short
// sleeves and winter from long ones.
func Season(t string) string {
	switch {
	case summerRe.MatchString(t):
		return SeasonSummer
	case winterRe.MatchString(t):
		return SeasonWinter
	case springRe.MatchString(t):
		return SeasonSpring
	case autumnRe.MatchString(t):
		return SeasonAutumn
	case attr.ShortSleeve(t):
		return SeasonSummer
	case attr.LongSleeve(t):
		return SeasonWinter
	}
	return ""
}

func isTShirt(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"ropa", "remeras"}) {
		return true
	}
	t := text.Build(p)
	return productRe.MatchString(t) && !negativeRe.MatchString(t)
}

// Extractor implements intent.Extractor for t-shirts.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the t-shirt extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.TShirt }

// IsQuery accepts t-shirt words. Without one, a sleeve, gender or season
// signal counts only when no other garment is named and every word describes
// clothing.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	stems := normalize.StemTokens(q)
	if tshirtWords.Any(toks) || tshirtWords.Any(stems) {
		return true
	}
	if negativeWords.Any(toks) || negativeWords.Any(stems) {
		return false
	}
	joined := strings.Join(toks, " ")
	signal := attr.Sleeve(joined) != "" || attr.Gender(joined) != "" || Season(joined) != ""
	return signal && attr.OnlyGarmentAttributes(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{
		Sleeve:    attr.Sleeve(joined),
		Gender:    attr.Gender(joined),
		Season:    Season(joined),
		Colors:    attr.GarmentColorList(toks),
		Materials: attr.GarmentMaterials.Collect(toks),
	}
	if b, ok := attr.ApparelBrands.Resolve(toks); ok {
		s.Brand = b
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Extractor) IsProduct(p *product.Product) bool { return isTShirt(p) }

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"ropa", "remeras"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	drop := append(tshirtWords.Words(),
		"temporada", "verano", "invierno", "primavera", "otono",
		"hombre", "mujer", "dama", "unisex", "kids", "infantil", "juvenil",
		"manga", "corta", "larga")
	drop = append(drop, attr.GarmentColors.Keys()...)
	return append(drop, attr.GarmentMaterials.Keys()...)
}
