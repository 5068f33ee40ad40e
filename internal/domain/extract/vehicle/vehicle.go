// Package vehicle detects car, motorcycle and pickup queries.
//
// The three extractors share Filters. A parsed brand is a hard substring
// filter; the remaining attributes are soft because listings rarely spell
// them out.
package vehicle

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Specs are the vehicle attributes parsed from a query.
type Specs struct {
	Brand   string  `json:"brand,omitempty"`
	Filters Filters `json:"vehicle_filters"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches filters by brand substring only.
func (s *Specs) Matches(p *product.Product) bool {
	if s.Brand == "" {
		return true
	}
	t := text.Build(p)
	if strings.Contains(t, s.Brand) {
		return true
	}
	return s.Brand == "volkswagen" && strings.Contains(t, "vw")
}

// SoftMatches implements intent.SoftMatcher.
func (s *Specs) SoftMatches(p *product.Product) bool {
	return s.Filters.Matches(p)
}

func dropTokens(q string, nouns []string) []string {
	return append(append([]string(nil), nouns...), DropTokens(q)...)
}

func inCategory(p *product.Product, sub string) bool {
	return category.MatchesPrefix(p, []string{"vehiculos", sub})
}
