// Package fridge detects refrigerator (heladera) queries and matches them by
// brand, frost system and capacity in liters.
package fridge

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

// Frost systems.
const (
	NoFrost = "nofrost"
	Frost   = "frost"
)

// Plausible fridge capacity range in liters.
const (
	minLiters = 80
	maxLiters = 9999
)

var (
	fridgeWords = attr.NewSet(
		"heladera", "heladeras", "refrigerador", "refrigeradora", "frigorifico", "freezer",
	)

	brands = attr.NewAliases(map[string]string{
		"electrolux": "electrolux", "whirlpool": "whirlpool", "lg": "lg", "samsung": "samsung",
		"philco": "philco", "patrick": "patrick", "gafa": "gafa", "kohinoor": "kohinoor",
		"bosch": "bosch", "siemens": "siemens", "mabe": "mabe", "drean": "drean",
		"bgh": "bgh", "hisense": "hisense",
	})

	// Containers that are also sold by the liter.
	litersVeto = attr.NewSet(
		"termotanque", "tanque", "mochila", "balde", "pileta", "bidon", "olla", "cerveza", "dispenser",
	)

	noFrostRe = regexp.MustCompile(`\bno[\s\-]?frost\b`)
	frostRe   = regexp.MustCompile(`\bfrost\b`)
	litersRe  = regexp.MustCompile(`\b(\d{2,4})\s*(?:l|lt|lts|litro|litros)\b`)

	accessoryRe = attr.WordRe(
		"filtro", "repuesto", "burlete", "estante", "bandeja", "lampara", "manija", "termostato",
	)
)

// Specs are the refrigerator attributes parsed from a query.
type Specs struct {
	Brand  string `json:"brand,omitempty"`
	Liters int    `json:"liters,omitempty"`
	Frost  string `json:"frost,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires brand, frost system and the stated capacity.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	switch s.Frost {
	case NoFrost:
		if !HasNoFrost(t) {
			return false
		}
	case Frost:
		if !HasFrost(t) {
			return false
		}
	}
	if s.Liters > 0 {
		l := strconv.Itoa(s.Liters)
		if !text.ContainsAny(t, l+"l", l+" l", l+"lt", l+" litros") {
			return false
		}
	}
	return true
}

// HasNoFrost reports a "no frost" mention in any spacing.
func HasNoFrost(s string) bool { return noFrostRe.MatchString(s) }

// HasFrost reports a plain "frost" mention that is not "no frost".
func HasFrost(s string) bool { return !HasNoFrost(s) && frostRe.MatchString(s) }

// Liters extracts a capacity in the fridge range, 0 when absent.
func Liters(s string) int {
	m := litersRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	if n := attr.Atoi(m[1]); n >= minLiters && n <= maxLiters {
		return n
	}
	return 0
}

// Extractor implements intent.Extractor for refrigerators.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the refrigerator extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Fridge }

// IsQuery accepts fridge words, a frost system or a capacity in liters. A
// brand alone is not enough.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	if fridgeWords.Any(toks) {
		return true
	}
	if HasNoFrost(joined) || HasFrost(joined) {
		return true
	}
	return Liters(joined) > 0 && !litersVeto.Any(normalize.StemTokens(q))
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{Liters: Liters(joined)}
	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	switch {
	case HasNoFrost(joined):
		s.Frost = NoFrost
	case HasFrost(joined):
		s.Frost = Frost
	}
	return s
}

// IsProduct trusts the fridge categories, else requires fridge wording and
// no spare-part words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"hogar", "electrodomesticos", "heladeras"}) ||
		category.MatchesPrefix(p, []string{"hogar", "heladeras"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "heladera", "refrigerador", "freezer") && !HasNoFrost(t) && !HasFrost(t) {
		return false
	}
	return !accessoryRe.MatchString(t)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"hogar", "heladeras"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return append(fridgeWords.Words(),
		"no", "frost", "nofrost", "inverter", "litro", "litros", "l", "lt", "lts")
}
