// Package bag detects handbag and wallet (cartera) queries.
//
// Brand, type, gender, color and material are strict. Size only rejects a
// product that declares a different one.
package bag

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

// Sizes.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

var (
	bagWords = attr.NewStemmedSet(
		"cartera", "carteras", "billetera", "billeteras", "monedero", "monederos",
		"wallet", "wallets", "bolso", "bolsos", "handbag", "handbags", "clutch",
	)
	negativeWords = attr.NewStemmedSet("mochila", "backpack", "maleta", "valija", "neceser", "rinonera")

	productRe  = regexp.MustCompile(`cartera|billetera|monedero|bolso|wallet|handbag`)
	negativeRe = regexp.MustCompile(`mochila|backpack|maleta|valija|neceser|rinonera`)

	types = attr.NewAliases(map[string]string{
		"clutch": "clutch", "bandolera": "bandolera", "sobre": "sobre", "tote": "tote",
		"crossbody": "crossbody", "shoulder": "shoulder", "hombro": "shoulder",
	})

	brands = attr.NewAliases(map[string]string{
		"gucci": "gucci", "prada": "prada", "chanel": "chanel",
		"louis vuitton": "louis vuitton", "louis": "louis vuitton", "vuitton": "louis vuitton", "lv": "louis vuitton",
		"michael kors": "michael kors", "michael": "michael kors", "kors": "michael kors", "mk": "michael kors",
		"coach": "coach", "hermes": "hermes", "dior": "dior", "versace": "versace", "fendi": "fendi",
		"valentino": "valentino", "balenciaga": "balenciaga",
		"kate spade": "kate spade", "kate": "kate spade", "spade": "kate spade",
		"furla": "furla", "longchamp": "longchamp", "zara": "zara", "hm": "hm", "prune": "prune",
		"save my bag": "save my bag", "save": "save my bag",
	})

	colors = attr.NewAliases(map[string]string{
		"negro": "negro", "black": "negro", "blanco": "blanco", "white": "blanco",
		"marron": "marron", "brown": "marron", "camel": "camel", "beige": "beige", "nude": "nude",
		"rojo": "rojo", "red": "rojo", "azul": "azul", "blue": "azul", "verde": "verde",
		"green": "verde", "rosa": "rosa", "pink": "rosa", "gris": "gris", "gray": "gris", "grey": "gris",
	})

	materials = attr.NewAliases(map[string]string{
		"cuero": "cuero", "leather": "cuero", "piel": "cuero",
		"eco": "eco cuero", "ecocuero": "eco cuero",
		"sintetico": "sintetico", "pu": "sintetico",
		"lona": "lona", "canvas": "lona", "gamuza": "gamuza", "suede": "gamuza",
	})

	sizes = attr.NewAliases(map[string]string{
		"chica": SizeSmall, "pequena": SizeSmall, "mini": SizeSmall, "small": SizeSmall,
		"mediana": SizeMedium, "medium": SizeMedium,
		"grande": SizeLarge, "large": SizeLarge, "xl": SizeLarge,
	})
)

// Specs are the bag attributes parsed from a query.
type Specs struct {
	Brand     string   `json:"brand,omitempty"`
	Type      string   `json:"type,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Materials []string `json:"materials,omitempty"`
	Size      string   `json:"size,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches implements intent.Specs.
func (s *Specs) Matches(p *product.Product) bool {
	if !isBag(p) {
		return false
	}
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	if s.Type != "" && !strings.Contains(t, s.Type) {
		return false
	}
	if s.Gender != "" && attr.Gender(t) != s.Gender {
		return false
	}
	if s.Size != "" {
		if size, ok := sizes.Resolve(strings.Fields(t)); ok && size != s.Size {
			return false
		}
	}
	return attr.ContainsAll(t, s.Colors) && attr.ContainsAll(t, s.Materials)
}

func isBag(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"ropa", "carteras"}) {
		return true
	}
	t := text.Build(p)
	return productRe.MatchString(t) && !negativeRe.MatchString(t)
}

// Extractor implements intent.Extractor for bags and wallets.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the bag extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Bag }

// IsQuery accepts bag words; luggage and backpack words veto it.
func (Extractor) IsQuery(q string) bool {
	stems := normalize.StemTokens(q)
	return bagWords.Any(stems) && !negativeWords.Any(stems)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	stems := normalize.StemTokens(q)
	s := &Specs{
		Gender:    attr.Gender(q),
		Colors:    colors.Collect(stems),
		Materials: materials.Collect(stems),
	}
	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	if v, ok := types.Resolve(toks); ok {
		s.Type = v
	}
	if v, ok := sizes.Resolve(toks); ok {
		s.Size = v
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Extractor) IsProduct(p *product.Product) bool { return isBag(p) }

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"ropa", "carteras"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	drop := append(bagWords.Words(), colors.Keys()...)
	drop = append(drop, materials.Keys()...)
	return append(drop, sizes.Keys()...)
}
