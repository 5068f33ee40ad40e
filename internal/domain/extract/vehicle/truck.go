package vehicle

import (
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

var (
	truckWords  = attr.NewSet("camioneta", "camionetas", "pickup", "pickups", "pick-up", "chata")
	truckModels = attr.NewSet("hilux", "ranger", "amarok", "s10", "frontier", "toro", "saveiro", "strada")
	truckRe     = attr.WordRe("camioneta", "camionetas", "pickup", "pick-up", "hilux", "ranger", "amarok", "s10", "frontier")
)

// Truck implements intent.Extractor for pickups.
type Truck struct{}

var _ intent.Extractor = Truck{}

// NewTruck returns the pickup extractor.
func NewTruck() Truck { return Truck{} }

// Kind implements intent.Extractor.
func (Truck) Kind() intent.Kind { return intent.Truck }

// IsQuery accepts pickup words or a known pickup model.
func (Truck) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	return truckWords.Any(toks) || truckModels.Any(toks)
}

// Parse implements intent.Extractor. "ram" is read as a brand only when a
// pickup word is present.
func (Truck) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	s := &Specs{Filters: ParseFilters(q)}
	if b, ok := carBrands.Resolve(toks); ok {
		s.Brand = b
	} else if truckWords.Any(toks) && attr.NewSet(toks...).Has("ram") {
		s.Brand = "ram"
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Truck) IsProduct(p *product.Product) bool {
	return inCategory(p, "camionetas") || truckRe.MatchString(text.Build(p))
}

// CategoryHint implements intent.Extractor.
func (Truck) CategoryHint(intent.Specs) []string {
	return []string{"vehiculos", "camionetas"}
}

// DropTokens implements intent.Extractor.
func (Truck) DropTokens(q string) []string {
	return dropTokens(q, truckWords.Words())
}
