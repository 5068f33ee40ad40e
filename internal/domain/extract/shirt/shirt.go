// Package shirt detects shirt and blouse (camisa) queries.
//
// Matching is strict: a requested sleeve, gender, color or material must be
// declared by the product and agree exactly. A unisex product does not
// satisfy a male or female request, and a query without gender carries no
// gender constraint.
package shirt

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

var (
	shirtWords = attr.NewStemmedSet(
		"camisa", "camisas", "shirt", "shirts", "camisola", "camisolas", "blusa", "blusas",
	)
	negativeWords = attr.NewStemmedSet(
		"remera", "remeras", "camiseta", "camisetas", "tshirt", "tshirts", "t-shirt", "t-shirts",
		"tee", "tees", "buzo", "hoodie", "campera", "abrigo", "sweater", "sueter", "pantalon",
		"jean", "jogger", "short", "bermuda", "zapatilla", "zapato", "calzado", "botin", "botines",
	)

	productRe  = regexp.MustCompile(`camisa|camisola|blusa|\bshirts?\b`)
	negativeRe = attr.WordRe(
		"remeras?", "camisetas?", "t-?shirts?", "tees?", "buzos?", "hoodie", "camperas?",
		"abrigos?", "sweater", "sueter", "pantalon(?:es)?", "jeans?", "joggers?", "shorts?",
		"bermudas?", "zapatillas?", "calzado", "botin(?:es)?",
	)
	formalRe = regexp.MustCompile(`\b(?:vestir|formal|oficina|sastrer\w*|elegante)\b`)
)

// Specs are the shirt attributes parsed from a query.
type Specs struct {
	Brand     string   `json:"brand,omitempty"`
	Sleeve    string   `json:"sleeve,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Materials []string `json:"materials,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches implements intent.Specs.
func (s *Specs) Matches(p *product.Product) bool {
	if !isShirt(p) {
		return false
	}
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	switch s.Sleeve {
	case attr.SleeveShort:
		if !attr.ShortSleeve(t) {
			return false
		}
	case attr.SleeveLong:
		if !attr.LongSleeve(t) {
			return false
		}
	}
	if s.Gender != "" && attr.Gender(t) != s.Gender {
		return false
	}
	return attr.ContainsAll(t, s.Colors) && attr.ContainsAll(t, s.Materials)
}

func isShirt(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"ropa", "camisas"}) {
		return true
	}
	t := text.Build(p)
	return productRe.MatchString(t) && !negativeRe.MatchString(t)
}

// Extractor implements intent.Extractor for shirts.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the shirt extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Shirt }

// IsQuery accepts shirt words. Without one, a sleeve, formal-wear or gender
// signal counts only when no other garment is named and every word describes
// clothing.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	stems := normalize.StemTokens(q)
	if shirtWords.Any(toks) || shirtWords.Any(stems) {
		return true
	}
	if negativeWords.Any(toks) || negativeWords.Any(stems) {
		return false
	}
	joined := strings.Join(toks, " ")
	signal := attr.Sleeve(joined) != "" || formalRe.MatchString(joined) || attr.Gender(joined) != ""
	return signal && attr.OnlyGarmentAttributes(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	stems := normalize.StemTokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{
		Sleeve:    attr.Sleeve(joined),
		Gender:    attr.Gender(joined),
		Colors:    attr.GarmentColorList(stems),
		Materials: attr.GarmentMaterials.Collect(stems),
	}
	if b, ok := attr.ApparelBrands.Resolve(toks); ok {
		s.Brand = b
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Extractor) IsProduct(p *product.Product) bool { return isShirt(p) }

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"ropa", "camisas"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	drop := append(shirtWords.Words(),
		"hombre", "mujer", "dama", "unisex", "manga", "corta", "larga",
		"formal", "oficina", "vestir", "elegante")
	drop = append(drop, attr.GarmentColors.Keys()...)
	return append(drop, attr.GarmentMaterials.Keys()...)
}
