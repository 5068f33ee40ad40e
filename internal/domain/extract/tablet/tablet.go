// Package tablet detects tablet queries and matches tablets by brand, model,
// connectivity, memory and screen size.
package tablet

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// inchTolerance is how far a product's screen size may drift from the query.
const inchTolerance = 0.15

var (
	tabletWords   = attr.NewSet("tablet", "tablets", "tab", "ipad")
	tabletPhrases = []string{"galaxy tab", "ipad", "matepad", "lenovo tab", "fire hd"}

	otherSignals = attr.Union(
		attr.NewSet("notebook", "laptop", "ultrabook", "pc", "pcs"),
		attr.PhoneSignals,
		attr.NewSet("tv", "tele", "televisor", "televisores", "smarttv", "4k", "uhd", "oled", "qled", "led"),
	)

	brands = attr.NewAliases(map[string]string{
		"apple": "apple", "ipad": "apple",
		"samsung": "samsung", "xiaomi": "xiaomi", "lenovo": "lenovo",
		"huawei": "huawei", "amazon": "amazon", "fire": "amazon",
		"alcatel": "alcatel", "nokia": "nokia",
	})
	// Brands that make few phones in the catalog; any context is enough.
	exclusiveBrands = attr.NewSet("ipad", "amazon", "fire")

	connectivity = attr.NewAliases(map[string]string{
		"wifi": "wifi", "wi-fi": "wifi", "lte": "lte", "4g": "4g", "5g": "5g",
	})

	accessories = []string{
		"funda", "case", "cargador", "cable", "templado", "vidrio", "glass",
		"pencil", "lapiz", "teclado", "keyboard", "stylus",
	}

	inchesUnitRe = regexp.MustCompile(`\b(\d{1,2}(?:[.,]\d)?)\s*("|pulgadas|pulgada|inch|in)(?:\s|$)`)
	inchesBareRe = regexp.MustCompile(`(?:^|\s)(\d{1,2}(?:[.,]\d)?)(?:\s|$)`)
	gbTokenRe    = regexp.MustCompile(`^\d{1,4}gb$`)
	comboRe      = regexp.MustCompile(`\b(\d{1,2})gb\s*[/\-]\s*(\d{2,4})gb\b`)
	modelRe      = regexp.MustCompile(`^[a-z]+\d{1,3}[a-z]?$`)
	keyboardSet  = attr.NewSet("teclado", "keyboard")
	pencilSet    = attr.NewSet("pencil", "lapiz", "stylus")
)

// Specs are the tablet attributes parsed from a query.
type Specs struct {
	Brand         string   `json:"brand,omitempty"`
	Inches        *float64 `json:"inches,omitempty"`
	Connectivity  string   `json:"connectivity,omitempty"`
	Storage       string   `json:"storage,omitempty"`
	RAM           string   `json:"ram,omitempty"`
	Model         string   `json:"model,omitempty"`
	WantsKeyboard bool     `json:"wants_keyboard,omitempty"`
	WantsPencil   bool     `json:"wants_pencil,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches filters by brand, model, connectivity and memory. Screen size only
// rejects products whose title states a different size.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	switch {
	case s.Brand == "apple":
		if !text.ContainsAny(t, "ipad", "apple") {
			return false
		}
	case s.Brand != "":
		if !strings.Contains(t, s.Brand) {
			return false
		}
	}
	if s.Model != "" && !strings.Contains(t, s.Model) {
		return false
	}
	if s.Connectivity != "" && !strings.Contains(t, s.Connectivity) {
		return false
	}
	if s.Storage != "" && !strings.Contains(t, s.Storage+"gb") {
		return false
	}
	if s.RAM != "" && !strings.Contains(t, s.RAM+"gb") {
		return false
	}
	if s.Inches != nil && p != nil {
		if in, ok := ProductInches(p.Title); ok && math.Abs(in-*s.Inches) > inchTolerance {
			return false
		}
	}
	return true
}

// SoftMatches prefers bundles with the requested keyboard or pencil.
func (s *Specs) SoftMatches(p *product.Product) bool {
	t := text.Build(p)
	if s.WantsKeyboard && !text.ContainsAny(t, "teclado", "keyboard") {
		return false
	}
	if s.WantsPencil && !text.ContainsAny(t, "pencil", "lapiz", "stylus") {
		return false
	}
	return true
}

// ProductInches reads a screen size with an explicit unit from a title.
func ProductInches(title string) (float64, bool) {
	m := inchesUnitRe.FindStringSubmatch(normalize.Text(title))
	if m == nil {
		return 0, false
	}
	return attr.ParseFloat(m[1]), true
}

// Extractor implements intent.Extractor for tablets.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the tablet extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Tablet }

// IsQuery accepts tablet words and phrases. A brand alone needs a stated
// screen size, or an exclusive brand plus connectivity or memory.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if otherSignals.Any(toks) {
		return false
	}
	if tabletWords.Any(toks) {
		return true
	}
	joined := strings.Join(toks, " ")
	for _, ph := range tabletPhrases {
		if strings.Contains(joined, ph) {
			return true
		}
	}
	if _, ok := brands.Resolve(toks); !ok {
		return false
	}
	if inchesUnitRe.MatchString(joined) {
		return true
	}
	_, hasContext := connectivity.Resolve(toks)
	for _, t := range toks {
		if gbTokenRe.MatchString(t) {
			hasContext = true
		}
	}
	return hasContext && exclusiveBrands.Any(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{}

	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	if in, ok := queryInches(joined); ok {
		s.Inches = &in
	}
	if c, ok := connectivity.Resolve(toks); ok {
		s.Connectivity = c
	}

	if m := comboRe.FindStringSubmatch(joined); m != nil {
		s.RAM, s.Storage = m[1], m[2]
	} else {
		for _, t := range toks {
			if !gbTokenRe.MatchString(t) {
				continue
			}
			n := attr.Atoi(strings.TrimSuffix(t, "gb"))
			if n >= 32 {
				s.Storage = strconv.Itoa(n)
			} else {
				s.RAM = strconv.Itoa(n)
			}
		}
	}

	for _, t := range toks {
		if _, ok := connectivity.Lookup(t); ok || gbTokenRe.MatchString(t) {
			continue
		}
		if modelRe.MatchString(t) {
			s.Model = t
			break
		}
	}

	s.WantsKeyboard = keyboardSet.Any(toks)
	s.WantsPencil = pencilSet.Any(toks)
	return s
}

// queryInches prefers a size with a unit and falls back to a bare number in
// the plausible tablet range.
func queryInches(joined string) (float64, bool) {
	if m := inchesUnitRe.FindStringSubmatch(joined); m != nil {
		return attr.ParseFloat(m[1]), true
	}
	for _, m := range inchesBareRe.FindAllStringSubmatch(joined, -1) {
		if v := attr.ParseFloat(m[1]); v >= 7 && v <= 14.6 {
			return v, true
		}
	}
	return 0, false
}

// IsProduct trusts the tablets category, else requires tablet wording and no
// accessory words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "tablets"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "tablet", "ipad", "galaxy tab", "tab ", "fire hd") {
		return false
	}
	return !text.ContainsAny(t, accessories...)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "tablets"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return []string{"tablet", "tablets", "tab", "pulgadas", "pulgada"}
}
