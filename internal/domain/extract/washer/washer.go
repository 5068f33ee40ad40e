// Package washer detects washing machine (lavarropa) queries and matches them
// by brand, load type, capacity, spin speed and drive features.
package washer

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

// Load types.
const (
	LoadFront = "front"
	LoadTop   = "top"
)

var (
	washerWords = attr.NewSet("lavarropa", "lavarropas", "lavadora", "lavadoras", "washer", "washers")

	brands = attr.NewAliases(map[string]string{
		"samsung": "samsung", "lg": "lg", "whirlpool": "whirlpool", "electrolux": "electrolux",
		"drean": "drean", "patrick": "patrick", "philco": "philco", "gafa": "gafa",
		"kohinoor": "kohinoor", "midea": "midea", "bgh": "bgh", "hisense": "hisense",
		"bosch": "bosch", "siemens": "siemens", "ariston": "ariston", "indesit": "indesit",
	})

	// Signal-only queries ("15 kg", "automatica", "inverter") from these
	// domains are not washers.
	vetoWords = attr.Union(
		attr.VehicleSignals, attr.VehicleBrands, attr.PetWords,
		attr.NewStemmedSet(
			"bolsa", "camioneta", "caja", "aire", "acondicionado", "split", "microondas",
			"mancuerna", "pesa", "disco", "harina", "yerba", "azucar", "cafe",
		),
	)

	inverterRe  = regexp.MustCompile(`\binverter\b`)
	automaticRe = regexp.MustCompile(`\bautomatic[oa]?\b`)
	semiAutoRe  = regexp.MustCompile(`\bsemi[\s\-]?(?:automatic[oa]?|auto)\b`)
	frontRe     = regexp.MustCompile(`\bfrontal\b|\bfront[\s\-]?load\b`)
	topRe       = regexp.MustCompile(`\bsuperior\b|\btop[\s\-]?load\b|\bvertical\b`)
	kgRe        = regexp.MustCompile(`\b(\d{1,2}(?:[.,]\d)?)\s*(?:kg|kgs|kilos?)\b`)
	rpmRe       = regexp.MustCompile(`\b(\d{3,4})\s*rpm\b`)
	dryerRe     = regexp.MustCompile(`\blava[\s\-]?y[\s\-]?seca\b|\blavasecarropas\b|\bsec(?:ar|ado)ropas\b|\bdryer\b`)

	accessoryRe = attr.WordRe(
		"manguera", "bomba", "ruleman", "rodamiento", "correa", "filtro", "repuesto", "placa",
		"programador", "perilla", "boton", "tapa", "cuba", "tambor", "amortiguador",
	)
)

// Specs are the washing machine attributes parsed from a query.
type Specs struct {
	Brand     string   `json:"brand,omitempty"`
	KG        *float64 `json:"kg,omitempty"`
	RPM       int      `json:"rpm,omitempty"`
	LoadType  string   `json:"load_type,omitempty"`
	Inverter  bool     `json:"inverter,omitempty"`
	Automatic bool     `json:"automatic,omitempty"`
	SemiAuto  bool     `json:"semi_auto,omitempty"`
	Drying    bool     `json:"drying,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires every stated attribute. Capacity and spin speed match
// exactly; an automatic request rejects semi-automatic products.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	if s.Brand != "" && !strings.Contains(t, s.Brand) {
		return false
	}
	switch s.LoadType {
	case LoadFront:
		if !frontRe.MatchString(t) {
			return false
		}
	case LoadTop:
		if !topRe.MatchString(t) {
			return false
		}
	}
	if s.Inverter && !inverterRe.MatchString(t) {
		return false
	}
	if s.SemiAuto && !semiAutoRe.MatchString(t) {
		return false
	}
	if s.Automatic && (semiAutoRe.MatchString(t) || !automaticRe.MatchString(t)) {
		return false
	}
	if s.Drying && !dryerRe.MatchString(t) {
		return false
	}
	if s.KG != nil && !kgPattern(*s.KG).MatchString(t) {
		return false
	}
	if s.RPM > 0 && !regexp.MustCompile(`\b`+strconv.Itoa(s.RPM)+`\s*rpm\b`).MatchString(t) {
		return false
	}
	return true
}

// kgPattern matches a capacity written with either decimal separator.
func kgPattern(kg float64) *regexp.Regexp {
	n := strings.ReplaceAll(regexp.QuoteMeta(strconv.FormatFloat(kg, 'f', -1, 64)), `\.`, `[.,]`)
	return regexp.MustCompile(`\b` + n + `\s*(?:kg|kgs|kilos?)\b`)
}

// KG extracts a capacity in the washer range.
func KG(s string) (float64, bool) {
	m := kgRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n := attr.ParseFloat(m[1])
	return n, n >= 3 && n <= 30
}

// RPM extracts a spin speed in the washer range, 0 when absent.
func RPM(s string) int {
	m := rpmRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	if n := attr.Atoi(m[1]); n >= 400 && n <= 2000 {
		return n
	}
	return 0
}

func hasSignals(t string) bool {
	if _, ok := KG(t); ok {
		return true
	}
	return RPM(t) > 0 ||
		frontRe.MatchString(t) || topRe.MatchString(t) ||
		automaticRe.MatchString(t) || semiAutoRe.MatchString(t) ||
		inverterRe.MatchString(t) || dryerRe.MatchString(t)
}

// Extractor implements intent.Extractor for washing machines.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the washing machine extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Washer }

// IsQuery accepts washer words, or washer signals such as a capacity in kg or
// "carga frontal" when no vehicle, pet or bag word is present.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if washerWords.Any(toks) {
		return true
	}
	if vetoWords.Any(toks) || vetoWords.Any(normalize.StemTokens(q)) {
		return false
	}
	return hasSignals(strings.Join(toks, " "))
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{RPM: RPM(joined)}
	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	if kg, ok := KG(joined); ok {
		s.KG = &kg
	}
	switch {
	case frontRe.MatchString(joined):
		s.LoadType = LoadFront
	case topRe.MatchString(joined):
		s.LoadType = LoadTop
	}
	s.Inverter = inverterRe.MatchString(joined)
	s.SemiAuto = semiAutoRe.MatchString(joined)
	s.Automatic = !s.SemiAuto && automaticRe.MatchString(joined)
	s.Drying = dryerRe.MatchString(joined)
	return s
}

// IsProduct trusts the washer categories, else requires washer wording or
// signals and no spare-part words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"hogar", "electrodomesticos", "lavarropas"}) ||
		category.MatchesPrefix(p, []string{"hogar", "lavarropas"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "lavarropa", "lavadora") && !hasSignals(t) {
		return false
	}
	return !accessoryRe.MatchString(t)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"hogar", "lavarropas"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return append(washerWords.Words(),
		"kg", "kgs", "kilo", "kilos", "rpm", "carga", "frontal", "superior", "vertical",
		"front", "load", "top", "inverter", "automatico", "automatica", "automatic",
		"semi", "auto", "lavasecarropas", "secarropas", "seca", "secado")
}
