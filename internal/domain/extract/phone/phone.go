// Package phone detects smartphone queries and matches phones by brand,
// model number, variant and memory.
package phone

import (
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

var (
	phoneWords = attr.NewSet(
		"celular", "celulares", "telefono", "telefonos",
		"smartphone", "smartphones", "iphone", "android",
	)
	brandWords = attr.NewSet(
		"iphone", "apple", "samsung", "xiaomi", "motorola", "huawei",
		"nokia", "oneplus", "realme", "oppo", "poco", "redmi",
	)
	brands = attr.NewAliases(map[string]string{
		"apple":    "iphone",
		"iphone":   "iphone",
		"huawei":   "huawei",
		"xiaomi":   "xiaomi",
		"redmi":    "xiaomi",
		"poco":     "xiaomi",
		"samsung":  "samsung",
		"motorola": "motorola",
		"nokia":    "nokia",
		"oneplus":  "oneplus",
		"realme":   "realme",
		"oppo":     "oppo",
	})
	variantWords = attr.NewSet("mini", "pro", "max", "ultra", "lite", "plus", "se", "prime", "neo", "t", "s", "5g")
	xiaomiSeries = attr.NewSet("redmi", "note", "mi", "poco")
	huaweiSeries = attr.NewSet("mate", "nova", "p")
	accessories  = []string{"funda", "cargador", "vidrio", "templado", "case"}
	// Words that name a different device even when a phone brand is present.
	otherDevices = attr.Union(attr.HeadphoneWords, attr.WatchWords, attr.TabletWords)

	numberRe   = regexp.MustCompile(`^\d{1,3}$`)
	gbTokenRe  = regexp.MustCompile(`^\d{1,4}gb$`)
	alphaNumRe = regexp.MustCompile(`^([a-z]+)?(\d{1,3})([a-z])?$`)
	comboRe    = regexp.MustCompile(`\b(\d{1,2})gb\s*[/\-]\s*(\d{2,4})gb\b`)
)

// AlphaNumModel is a model token mixing letters and digits, such as "a54" or "s23".
type AlphaNumModel struct {
	Raw    string `json:"raw"`
	Prefix string `json:"prefix,omitempty"`
	Number string `json:"number"`
	Suffix string `json:"suffix,omitempty"`
}

// Specs are the phone attributes parsed from a query. Storage and RAM are GB
// values kept as digit strings.
type Specs struct {
	Brand         string         `json:"brand,omitempty"`
	Series        []string       `json:"series,omitempty"`
	Model         string         `json:"model,omitempty"`
	AlphaNumModel *AlphaNumModel `json:"alpha_num_model,omitempty"`
	Variants      []string       `json:"variants,omitempty"`
	Storage       string         `json:"storage,omitempty"`
	RAM           string         `json:"ram,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires every parsed attribute to appear in the searchable text.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	if !text.ContainsAll(t, s.Series) {
		return false
	}
	if s.Model != "" && !strings.Contains(t, s.Model) {
		return false
	}
	if m := s.AlphaNumModel; m != nil {
		if !strings.Contains(t, m.Raw) && !strings.Contains(t, m.Number) {
			return false
		}
	}
	if !text.ContainsAll(t, s.Variants) {
		return false
	}
	if s.Storage != "" && !strings.Contains(t, s.Storage+"gb") {
		return false
	}
	if s.RAM != "" && !strings.Contains(t, s.RAM+"gb") {
		return false
	}
	return true
}

// Extractor implements intent.Extractor for phones.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the phone extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Phone }

// IsQuery matches a phone word or phone brand, unless another device is named.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if otherDevices.Any(toks) {
		return false
	}
	return phoneWords.Any(toks) || brandWords.Any(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{}

	s.Brand, _ = brands.Resolve(toks)
	switch s.Brand {
	case "xiaomi":
		s.Series = xiaomiSeries.Collect(toks)
	case "huawei":
		s.Series = huaweiSeries.Collect(toks)
	}

	for _, t := range toks {
		if numberRe.MatchString(t) {
			s.Model = t
			break
		}
	}
	for _, t := range toks {
		if numberRe.MatchString(t) {
			continue
		}
		if m := alphaNumRe.FindStringSubmatch(t); m != nil {
			s.AlphaNumModel = &AlphaNumModel{Raw: t, Prefix: m[1], Number: m[2], Suffix: m[3]}
			break
		}
	}
	s.Variants = variantWords.Collect(toks)

	if m := comboRe.FindStringSubmatch(joined); m != nil {
		s.RAM, s.Storage = m[1], m[2]
		return s
	}
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
	return s
}

// IsProduct trusts the phone category, else requires a phone word without
// accessory words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "celulares"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "celular", "telefono", "smartphone", "iphone", "android") {
		return false
	}
	return !text.ContainsAny(t, accessories...)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "celulares"}
}

// DropTokens returns the generic phone nouns; brands and models stay.
func (Extractor) DropTokens(string) []string {
	return []string{"celular", "celulares", "telefono", "telefonos", "smartphone", "smartphones"}
}
