// Package headphone detects headphone queries. Brand is a hard filter; form
// factor, wireless, noise cancelling and gaming are preferences.
package headphone

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Form factors.
const (
	FormInEar   = "in-ear"
	FormOverEar = "over-ear"
)

var (
	brands = attr.NewAliases(map[string]string{
		"sony": "sony", "jbl": "jbl", "apple": "apple", "airpods": "apple",
		"samsung": "samsung", "xiaomi": "xiaomi", "redmi": "xiaomi", "bose": "bose",
		"skullcandy": "skullcandy", "sennheiser": "sennheiser", "hyperx": "hyperx",
		"logitech": "logitech", "razer": "razer", "philips": "philips",
		"panasonic": "panasonic", "beats": "beats", "audio technica": "audio-technica",
		"audio-technica": "audio-technica", "soundcore": "soundcore", "anker": "soundcore",
		"redragon": "redragon", "genius": "genius", "noga": "noga",
	})

	inEarWords   = attr.NewSet("inear", "in-ear", "intraaural", "earbuds", "earbud", "buds", "tws")
	overEarWords = attr.NewSet("over", "over-ear", "vincha", "supraaural", "on-ear", "diadema")
	wirelessSet  = attr.NewSet("bluetooth", "bt", "inalambrico", "inalambricos", "wireless", "tws")
	wiredSet     = attr.NewSet("cable", "alambrico", "jack")
	gamingSet    = attr.NewSet("gamer", "gaming", "headset")

	ancPhrases = []string{"cancelacion de ruido", "noise cancelling", "noise canceling", "anc"}

	accessoryRe = attr.WordRe("repuesto", "almohadillas", "funda", "estuche", "soporte", "gomitas", "adaptador")
)

// Specs are the headphone attributes parsed from a query.
type Specs struct {
	Brand    string `json:"brand,omitempty"`
	Form     string `json:"form,omitempty"`
	Wireless *bool  `json:"wireless,omitempty"`
	ANC      bool   `json:"anc,omitempty"`
	Gaming   bool   `json:"gaming,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires the brand. Apple also matches "airpods" titles.
func (s *Specs) Matches(p *product.Product) bool {
	if s.Brand == "" {
		return true
	}
	t := text.Build(p)
	switch s.Brand {
	case "apple":
		return text.ContainsAny(t, "apple", "airpods")
	case "xiaomi":
		return text.ContainsAny(t, "xiaomi", "redmi")
	case "soundcore":
		return text.ContainsAny(t, "soundcore", "anker")
	case "audio-technica":
		return text.ContainsAny(t, "audio-technica", "audio technica")
	default:
		return strings.Contains(t, s.Brand)
	}
}

// SoftMatches prefers the requested form factor, connection, noise
// cancelling and gaming models.
func (s *Specs) SoftMatches(p *product.Product) bool {
	t := text.Build(p)
	switch s.Form {
	case FormInEar:
		if !inEarWords.InText(t) && !text.ContainsAny(t, "in ear", "airpods") {
			return false
		}
	case FormOverEar:
		if !overEarWords.InText(t) && !strings.Contains(t, "over ear") {
			return false
		}
	}
	if s.Wireless != nil && *s.Wireless != wirelessSet.InText(t) {
		return false
	}
	if s.ANC && !text.ContainsAny(t, ancPhrases...) {
		return false
	}
	if s.Gaming && !gamingSet.InText(t) {
		return false
	}
	return true
}

// Extractor implements intent.Extractor for headphones.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the headphone extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Headphone }

// IsQuery accepts headphone words.
func (Extractor) IsQuery(q string) bool {
	return attr.HeadphoneWords.Any(normalize.Tokens(q))
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{}
	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	switch {
	case inEarWords.Any(toks) || strings.Contains(joined, "in ear") || attr.NewSet("airpods").Any(toks):
		s.Form = FormInEar
	case overEarWords.Any(toks) || strings.Contains(joined, "over ear"):
		s.Form = FormOverEar
	}
	switch {
	case wirelessSet.Any(toks):
		w := true
		s.Wireless = &w
	case wiredSet.Any(toks):
		w := false
		s.Wireless = &w
	}
	s.ANC = text.ContainsAny(attr.Padded(toks), " anc ", "cancelacion de ruido", "noise cancel")
	s.Gaming = gamingSet.Any(toks)
	return s
}

// IsProduct trusts the headphones category, else requires headphone wording
// and no accessory words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "auriculares"}) {
		return true
	}
	t := text.Build(p)
	if !attr.HeadphoneWords.InText(t) {
		return false
	}
	return !accessoryRe.MatchString(t)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "auriculares"}
}

// DropTokens returns headphone nouns and the form and connection words that
// SoftMatches handles.
func (Extractor) DropTokens(string) []string {
	drop := append(attr.HeadphoneWords.Words(), "in", "ear", "over", "on")
	drop = append(drop, inEarWords.Words()...)
	drop = append(drop, overEarWords.Words()...)
	drop = append(drop, wirelessSet.Words()...)
	drop = append(drop, wiredSet.Words()...)
	return append(drop, gamingSet.Words()...)
}
