package vehicle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Filter values.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"

	Traction4x4 = "4x4"
	Traction4x2 = "4x2"

	FuelDiesel = "diesel"
	FuelNafta  = "nafta"

	TransmissionAuto   = "auto"
	TransmissionManual = "manual"

	TrimFull = "full"
	TrimBase = "base"
)

var (
	yearRe   = regexp.MustCompile(`^(?:19[89]\d|20[0-3]\d)$`)
	ccToken  = regexp.MustCompile(`^(\d{2,4})cc$`)
	ccRe     = regexp.MustCompile(`\b(\d{2,4})\s*cc\b`)
	atWordRe = attr.WordRe("at")
	newRe    = regexp.MustCompile(`\b0\s?km\b|\bcero km\b|\bnuev[oa]\b`)

	newWords    = attr.NewSet("0km", "cero")
	usedWords   = attr.NewSet("usado", "usados", "usada", "usadas")
	fourWD      = attr.NewSet("4x4", "4wd", "awd")
	twoWD       = attr.NewSet("4x2", "2wd")
	dieselWords = attr.NewSet("diesel", "gasoil")
	naftaWords  = attr.NewSet("nafta", "gasolina")
	autoWords   = attr.NewSet("automatico", "automatica", "at")
	fullWords   = attr.NewSet("full", "premium")

	filterWords = attr.Union(
		newWords, usedWords, fourWD, twoWD, dieselWords, naftaWords, autoWords, fullWords,
		attr.NewSet("manual", "base"),
	)
)

// Filters are the vehicle attributes shared by cars, motorcycles and pickups.
type Filters struct {
	Year         int    `json:"year,omitempty"`
	Condition    string `json:"condition,omitempty"`
	Traction     string `json:"traction,omitempty"`
	Fuel         string `json:"fuel,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Trim         string `json:"trim,omitempty"`
	CC           int    `json:"cc,omitempty"`
}

// Empty reports whether no filter was parsed.
func (f Filters) Empty() bool { return f == Filters{} }

// ParseFilters reads year, condition, drivetrain, fuel, transmission, trim
// and engine displacement from a query.
func ParseFilters(q string) Filters {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	set := attr.NewSet(toks...)
	var f Filters

	for _, t := range toks {
		if yearRe.MatchString(t) {
			f.Year = attr.Atoi(t)
			break
		}
	}

	switch {
	case newWords.Any(toks) || strings.Contains(attr.Padded(toks), " 0 km "):
		f.Condition = ConditionNew
	case usedWords.Any(toks):
		f.Condition = ConditionUsed
	}

	switch {
	case fourWD.Any(toks):
		f.Traction = Traction4x4
	case twoWD.Any(toks):
		f.Traction = Traction4x2
	}

	switch {
	case dieselWords.Any(toks):
		f.Fuel = FuelDiesel
	case naftaWords.Any(toks):
		f.Fuel = FuelNafta
	}

	switch {
	case autoWords.Any(toks):
		f.Transmission = TransmissionAuto
	case set.Has("manual"):
		f.Transmission = TransmissionManual
	}

	switch {
	case fullWords.Any(toks):
		f.Trim = TrimFull
	case set.Has("base"):
		f.Trim = TrimBase
	}

	for _, t := range toks {
		if m := ccToken.FindStringSubmatch(t); m != nil {
			f.CC = attr.Atoi(m[1])
			break
		}
	}
	if f.CC == 0 {
		if m := ccRe.FindStringSubmatch(joined); m != nil {
			f.CC = attr.Atoi(m[1])
		}
	}
	return f
}

// Matches checks every set filter against the product text.
func (f Filters) Matches(p *product.Product) bool {
	t := text.Build(p)
	if f.Year > 0 && !strings.Contains(t, strconv.Itoa(f.Year)) {
		return false
	}
	switch f.Condition {
	case ConditionNew:
		if !newRe.MatchString(t) {
			return false
		}
	case ConditionUsed:
		if !strings.Contains(t, "usad") {
			return false
		}
	}
	switch f.Traction {
	case Traction4x4:
		if !text.ContainsAny(t, "4x4", "4wd", "awd") {
			return false
		}
	case Traction4x2:
		if !text.ContainsAny(t, "4x2", "2wd") {
			return false
		}
	}
	switch f.Fuel {
	case FuelDiesel:
		if !text.ContainsAny(t, "diesel", "gasoil") {
			return false
		}
	case FuelNafta:
		if !text.ContainsAny(t, "nafta", "gasolina") {
			return false
		}
	}
	switch f.Transmission {
	case TransmissionAuto:
		if !text.ContainsAny(t, "automatico", "automatica") && !atWordRe.MatchString(t) {
			return false
		}
	case TransmissionManual:
		if !strings.Contains(t, "manual") {
			return false
		}
	}
	switch f.Trim {
	case TrimFull:
		if !text.ContainsAny(t, "full", "premium") {
			return false
		}
	case TrimBase:
		if !strings.Contains(t, "base") {
			return false
		}
	}
	if f.CC > 0 {
		cc := strconv.Itoa(f.CC)
		if !strings.Contains(t, cc+"cc") && !strings.Contains(t, cc+" cc") {
			return false
		}
	}
	return true
}

// DropTokens returns the query tokens consumed by ParseFilters.
func DropTokens(q string) []string {
	toks := normalize.Tokens(q)
	var drop []string
	for _, t := range toks {
		if yearRe.MatchString(t) || ccToken.MatchString(t) || filterWords.Has(t) {
			drop = append(drop, t)
		}
	}
	if ccRe.MatchString(strings.Join(toks, " ")) {
		drop = append(drop, "cc")
	}
	return drop
}
