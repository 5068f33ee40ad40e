package vehicle

import (
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

var (
	carWords = attr.NewSet("auto", "autos", "vehiculo", "vehiculos", "sedan", "hatchback", "coupe", "camion", "camiones")
	carRe    = attr.WordRe("auto", "autos", "sedan", "hatchback", "coupe")

	carBrands = attr.NewAliases(map[string]string{
		"toyota": "toyota", "ford": "ford", "chevrolet": "chevrolet", "chevy": "chevrolet",
		"fiat": "fiat", "renault": "renault", "volkswagen": "volkswagen", "vw": "volkswagen",
		"peugeot": "peugeot", "citroen": "citroen", "honda": "honda", "nissan": "nissan",
		"bmw": "bmw", "audi": "audi", "mercedes": "mercedes", "mercedes-benz": "mercedes",
		"mercedes benz": "mercedes", "jeep": "jeep", "kia": "kia", "hyundai": "hyundai",
	})

	carBrandRe = attr.WordRe(carBrands.Keys()...)

	// Listings for parts and accessories that name a car brand.
	carAccessoryRe = attr.WordRe(
		"funda", "fundas", "cubre", "alfombra", "alfombras", "cubierta", "cubiertas", "neumatico",
		"neumaticos", "llanta", "llantas", "repuesto", "repuestos", "filtro", "escobilla", "escobillas",
		"juguete", "escala", "llavero", "calco", "calcos",
	)
)

// Car implements intent.Extractor for cars.
type Car struct{}

var _ intent.Extractor = Car{}

// NewCar returns the car extractor.
func NewCar() Car { return Car{} }

// Kind implements intent.Extractor.
func (Car) Kind() intent.Kind { return intent.Car }

// IsQuery accepts car words or a car brand.
func (Car) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if carWords.Any(toks) {
		return true
	}
	_, ok := carBrands.Resolve(toks)
	return ok
}

// Parse implements intent.Extractor.
func (Car) Parse(q string) intent.Specs {
	s := &Specs{Filters: ParseFilters(q)}
	if b, ok := carBrands.Resolve(normalize.Tokens(q)); ok {
		s.Brand = b
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Car) IsProduct(p *product.Product) bool {
	if inCategory(p, "autos") {
		return true
	}
	t := text.Build(p)
	if carRe.MatchString(t) {
		return true
	}
	return carBrandRe.MatchString(t) && !carAccessoryRe.MatchString(t)
}

// CategoryHint implements intent.Extractor.
func (Car) CategoryHint(intent.Specs) []string {
	return []string{"vehiculos", "autos"}
}

// DropTokens implements intent.Extractor.
func (Car) DropTokens(q string) []string {
	return dropTokens(q, []string{"auto", "autos", "vehiculo", "vehiculos"})
}
