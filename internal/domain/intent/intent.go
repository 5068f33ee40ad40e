// Package intent defines the classification a query resolves to and the
// contract every product-domain extractor implements.
package intent

import "github.com/kailas-cloud/vidriera/internal/domain/product"

// Kind tags the product domain of a query.
type Kind string

// Intent kinds.
const (
	Generic   Kind = "generic"
	Category  Kind = "category"
	Phone     Kind = "phone"
	Notebook  Kind = "notebook"
	PC        Kind = "pc"
	Tablet    Kind = "tablet"
	TV        Kind = "tv"
	Speaker   Kind = "speaker"
	Headphone Kind = "headphone"
	Camera    Kind = "camera"
	Beauty    Kind = "beauty"
	Fridge    Kind = "heladera"
	Washer    Kind = "lavarropa"
	TShirt    Kind = "remera"
	Shirt     Kind = "camisa"
	Bag       Kind = "cartera"
	Car       Kind = "car"
	Moto      Kind = "moto"
	Truck     Kind = "truck"
)

// IsVehicle reports whether k is one of the vehicle kinds.
func (k Kind) IsVehicle() bool {
	return k == Car || k == Moto || k == Truck
}

// Specs is the attribute bundle parsed from a query for one domain.
type Specs interface {
	// Matches reports whether the product satisfies every populated attribute.
	Matches(p *product.Product) bool
	// BrandName returns the resolved brand or "".
	BrandName() string
}

// SoftMatcher is implemented by specs that carry attributes a catalog may
// leave undeclared. Its filter is skipped when it would empty the pool.
type SoftMatcher interface {
	SoftMatches(p *product.Product) bool
}

// Extractor is the four-operation contract of a product domain plus the
// metadata the search pipeline needs.
type Extractor interface {
	Kind() Kind
	// IsQuery reports whether the normalized query belongs to the domain.
	IsQuery(q string) bool
	// Parse extracts structured attributes from the normalized query.
	Parse(q string) Specs
	// IsProduct reports whether a product plausibly belongs to the domain.
	IsProduct(p *product.Product) bool
	// CategoryHint returns the category prefix for parsed specs.
	CategoryHint(s Specs) []string
	// DropTokens returns the query words consumed by the domain.
	DropTokens(q string) []string
}

// Intent is the classification of one query.
type Intent struct {
	Kind         Kind     `json:"type"`
	CategoryHint []string `json:"category_hint,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Specs        Specs    `json:"specs,omitempty"`

	extractor Extractor
}

// GenericIntent is the fallback intent with no hint.
func GenericIntent() Intent {
	return Intent{Kind: Generic}
}

// FromCategory builds a category intent for a registry path.
func FromCategory(path []string) Intent {
	return Intent{Kind: Category, CategoryHint: path}
}

// FromExtractor builds a domain intent from a parsed query.
func FromExtractor(e Extractor, s Specs) Intent {
	in := Intent{
		Kind:         e.Kind(),
		CategoryHint: e.CategoryHint(s),
		Specs:        s,
		extractor:    e,
	}
	if s != nil {
		in.Brand = s.BrandName()
	}
	return in
}

// Extractor returns the domain extractor that produced the intent, or nil.
func (i Intent) Extractor() Extractor { return i.extractor }

// HasHint reports whether a category hint is set.
func (i Intent) HasHint() bool { return len(i.CategoryHint) > 0 }
