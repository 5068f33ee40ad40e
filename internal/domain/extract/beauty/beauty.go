// Package beauty detects makeup, fragrance and personal care queries.
package beauty

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Product types. Lipstick is a family that includes gloss.
const (
	TypeLipstick    = "labial"
	TypeGloss       = "gloss"
	TypeEyeliner    = "delineador"
	TypeMascara     = "mascara"
	TypeEyeshadow   = "sombras"
	TypeFoundation  = "base"
	TypeConcealer   = "corrector"
	TypePowder      = "polvo"
	TypeBlush       = "rubor"
	TypeHighlighter = "iluminador"
	TypeBrushes     = "brochas"
	TypePerfume     = "perfume"
	TypeCream       = "crema"
	TypeShampoo     = "shampoo"
)

type typeRule struct {
	typ   string
	words attr.Set
	// weak words only count as a beauty signal next to another one.
	weak bool
}

// Checked in order; the first rule with a word in the query wins.
var typeRules = []typeRule{
	{typ: TypeLipstick, words: attr.NewStemmedSet("labial", "labiales", "lipstick")},
	{typ: TypeGloss, words: attr.NewStemmedSet("gloss", "lipgloss", "brillito")},
	{typ: TypeGloss, words: attr.NewSet("brillo"), weak: true},
	{typ: TypeEyeliner, words: attr.NewStemmedSet("delineador", "liner", "eyeliner")},
	{typ: TypeMascara, words: attr.NewStemmedSet("rimel", "rimmel", "pestanas")},
	{typ: TypeMascara, words: attr.NewSet("mascara"), weak: true},
	{typ: TypeEyeshadow, words: attr.NewStemmedSet("eyeshadow")},
	{typ: TypeEyeshadow, words: attr.NewStemmedSet("sombras", "sombra", "paleta"), weak: true},
	{typ: TypeFoundation, words: attr.NewSet("foundation")},
	{typ: TypeFoundation, words: attr.NewSet("base"), weak: true},
	{typ: TypeConcealer, words: attr.NewSet("concealer")},
	{typ: TypeConcealer, words: attr.NewSet("corrector"), weak: true},
	{typ: TypePowder, words: attr.NewSet("polvo", "compacto", "setting"), weak: true},
	{typ: TypeBlush, words: attr.NewStemmedSet("rubor", "blush")},
	{typ: TypeHighlighter, words: attr.NewStemmedSet("iluminador", "highlighter")},
	{typ: TypeBrushes, words: attr.NewStemmedSet("brocha", "brochas", "brush", "brushes")},
	{typ: TypePerfume, words: attr.NewStemmedSet("perfume", "perfumes", "fragancia", "fragancias", "parfum", "edt", "edp")},
	{typ: TypeCream, words: attr.NewStemmedSet("hidratante", "locion", "serum", "skincare")},
	{typ: TypeCream, words: attr.NewStemmedSet("crema"), weak: true},
	{typ: TypeShampoo, words: attr.NewStemmedSet("shampoo", "champu", "acondicionador")},
}

var (
	beautyWords = attr.NewStemmedSet("belleza", "makeup", "maquillaje", "cosmetica", "cosmeticos")

	brands = attr.NewAliases(map[string]string{
		"maybelline": "maybelline", "loreal": "loreal", "l'oreal": "loreal",
		"revlon": "revlon", "mac": "mac", "avon": "avon", "natura": "natura",
		"vogue": "vogue", "rimmel": "rimmel", "nyx": "nyx", "essence": "essence",
		"dior": "dior", "chanel": "chanel", "givenchy": "givenchy",
		"carolina herrera": "carolina herrera", "carolina": "carolina herrera", "herrera": "carolina herrera",
		"paco rabanne": "paco rabanne", "paco": "paco rabanne", "rabanne": "paco rabanne",
		"versace": "versace", "calvin klein": "calvin klein", "calvin": "calvin klein", "klein": "calvin klein",
	})

	// Words of domains that share beauty vocabulary ("base", "mac", "polvo").
	exclusions = attr.Union(
		attr.PhoneSignals, attr.NotebookSignals, attr.TVSignals, attr.VehicleSignals,
		attr.PetWords, attr.HeadphoneWords, attr.TabletWords,
		attr.NewStemmedSet(
			"pc", "macbook", "apple", "m1", "m2", "m3", "cargador", "cama", "sommier", "colchon",
			"mesa", "aspiradora", "remera", "camisa", "cartera", "jean", "zapatilla", "buzo",
			"campera", "pantalon", "vestido", "buceo", "padel", "heladera", "lavarropa",
		),
	)

	makeupSignals = attr.NewStemmedSet(
		"maquillaje", "labial", "labiales", "gloss", "base", "corrector", "polvo", "rubor",
		"iluminador", "sombras", "delineador", "rimel", "rimmel", "pestanas",
	)
	accessorySignals = attr.NewStemmedSet(
		"brocha", "brochas", "pincel", "pinceles", "esponja", "beautyblender", "pinza", "arqueador",
	)
	personalCareSignals = attr.NewStemmedSet(
		"perfume", "fragancia", "skincare", "crema", "hidratante", "serum", "shampoo",
		"acondicionador", "desodorante",
	)

	lipSignals = []string{
		"labial", "labiales", "lipstick", "gloss", "lipgloss", "brillo", "tinta", "balm", "balsamo",
	}
	mateSet       = attr.NewSet("mate", "matte")
	waterproofSet = attr.NewSet("waterproof", "impermeable")
)

// Specs are the beauty attributes parsed from a query.
type Specs struct {
	Brand           string   `json:"brand,omitempty"`
	ProductType     string   `json:"product_type,omitempty"`
	Category        []string `json:"category_hint,omitempty"`
	WantsMate       bool     `json:"wants_mate,omitempty"`
	WantsWaterproof bool     `json:"wants_waterproof,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires the beauty subcategory, the brand and the lip family.
func (s *Specs) Matches(p *product.Product) bool {
	if len(s.Category) > 0 && !category.MatchesPrefix(p, s.Category) {
		return false
	}
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	switch s.ProductType {
	case TypeLipstick:
		return text.ContainsAny(t, lipSignals...)
	case TypeGloss:
		return text.ContainsAny(t, "gloss", "brillo")
	}
	return true
}

// SoftMatches prefers matte and waterproof finishes when asked.
func (s *Specs) SoftMatches(p *product.Product) bool {
	t := text.Build(p)
	if s.WantsMate && !text.ContainsAny(t, "mate", "matte") {
		return false
	}
	if s.WantsWaterproof && !text.ContainsAny(t, "waterproof", "a prueba de agua", "resistente al agua") {
		return false
	}
	return true
}

// Extractor implements intent.Extractor for beauty products.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the beauty extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Beauty }

// IsQuery accepts beauty words, strong product-type words and beauty brands.
// Weak type words such as "base" or "polvo" need a second weak word or a
// makeup accessory. Words of other domains veto the query.
func (Extractor) IsQuery(q string) bool {
	toks := queryTokens(q)
	if exclusions.Any(toks) {
		return false
	}
	_, hasBrand := brands.Resolve(normalize.Tokens(q))
	strong := hasBrand || beautyWords.Any(toks)
	weak := make(map[string]struct{})
	for _, r := range typeRules {
		found := r.words.Collect(toks)
		if len(found) == 0 {
			continue
		}
		if !r.weak {
			strong = true
		}
		for _, w := range found {
			weak[normalize.Stem(w)] = struct{}{}
		}
	}
	return strong || len(weak) >= 2 || (len(weak) == 1 && accessorySignals.Any(toks))
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	raw := normalize.Tokens(q)
	toks := queryTokens(q)
	s := &Specs{}

	if b, ok := brands.Resolve(raw); ok {
		s.Brand = b
	}
	for _, r := range typeRules {
		if r.words.Any(toks) {
			s.ProductType = r.typ
			break
		}
	}

	switch {
	case accessorySignals.Any(toks):
		s.Category = []string{"belleza", "accesorios"}
	case personalCareSignals.Any(toks):
		s.Category = []string{"belleza", "cuidado personal"}
	case makeupSignals.Any(toks):
		s.Category = []string{"belleza", "maquillaje"}
	}

	s.WantsMate = mateSet.Any(raw)
	s.WantsWaterproof = waterproofSet.Any(raw) ||
		text.ContainsAny(strings.Join(raw, " "), "prueba de agua", "resistente al agua")
	return s
}

// queryTokens returns the normalized tokens followed by their stems.
func queryTokens(q string) []string {
	return append(normalize.Tokens(q), normalize.StemTokens(q)...)
}

// IsProduct trusts the beauty category, else looks for beauty wording.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"belleza"}) {
		return true
	}
	return text.ContainsAny(text.Build(p), "labial", "gloss", "maquillaje", "perfume", "skincare", "brocha")
}

// CategoryHint returns the beauty subcategory the query points at, or the
// beauty root.
func (Extractor) CategoryHint(s intent.Specs) []string {
	if bs, ok := s.(*Specs); ok && len(bs.Category) > 0 {
		return append([]string(nil), bs.Category...)
	}
	return []string{"belleza"}
}

// DropTokens returns the generic beauty nouns and finish words.
func (Extractor) DropTokens(string) []string {
	return append(beautyWords.Words(), "mate", "matte", "waterproof", "labiales", "perfumes", "fragancias")
}
