package vehicle

import (
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

var (
	motoWords = attr.NewSet("moto", "motos", "motocicleta", "motocicletas", "scooter", "scooters", "cuatriciclo", "enduro")
	motoRe    = attr.WordRe("moto", "motos", "motocicleta", "motocicletas", "scooter", "cuatriciclo")

	motoBrands = attr.NewAliases(map[string]string{
		"honda": "honda", "yamaha": "yamaha", "kawasaki": "kawasaki", "suzuki": "suzuki",
		"ducati": "ducati", "bmw": "bmw", "ktm": "ktm", "triumph": "triumph",
		"harley": "harley", "harley-davidson": "harley", "harley davidson": "harley", "davidson": "harley",
		"bajaj": "bajaj", "rouser": "rouser", "benelli": "benelli", "zanella": "zanella",
		"gilera": "gilera", "motomel": "motomel", "corven": "corven", "hero": "hero",
		"royal": "royal", "royal enfield": "royal", "royal-enfield": "royal", "enfield": "royal",
	})

	// Brands that build motorcycles only.
	motoOnlyBrands = attr.NewSet(
		"yamaha", "kawasaki", "ducati", "ktm", "triumph", "harley", "harley-davidson",
		"bajaj", "rouser", "benelli", "zanella", "gilera", "motomel", "corven",
	)
)

// Moto implements intent.Extractor for motorcycles.
type Moto struct{}

var _ intent.Extractor = Moto{}

// NewMoto returns the motorcycle extractor.
func NewMoto() Moto { return Moto{} }

// Kind implements intent.Extractor.
func (Moto) Kind() intent.Kind { return intent.Moto }

// IsQuery accepts motorcycle words, motorcycle-only brands, or a shared brand
// next to an engine displacement.
func (Moto) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if motoWords.Any(toks) || motoOnlyBrands.Any(toks) {
		return true
	}
	_, branded := motoBrands.Resolve(toks)
	return branded && ParseFilters(q).CC > 0
}

// Parse implements intent.Extractor.
func (Moto) Parse(q string) intent.Specs {
	s := &Specs{Filters: ParseFilters(q)}
	if b, ok := motoBrands.Resolve(normalize.Tokens(q)); ok {
		s.Brand = b
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Moto) IsProduct(p *product.Product) bool {
	return inCategory(p, "motos") || motoRe.MatchString(text.Build(p))
}

// CategoryHint implements intent.Extractor.
func (Moto) CategoryHint(intent.Specs) []string {
	return []string{"vehiculos", "motos"}
}

// DropTokens implements intent.Extractor.
func (Moto) DropTokens(q string) []string {
	return dropTokens(q, motoWords.Words())
}
