// Package camera detects camera queries, distinguishing security cameras from
// general ones.
package camera

import (
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

var (
	cameraWords   = attr.NewSet("camara", "camaras", "camera", "cameras")
	securityWords = attr.NewSet("seguridad", "security", "cctv", "vigilancia")
	// A camera word next to a phone word is a phone feature, not a camera.
	phoneWords = attr.Union(attr.PhoneSignals, attr.NewSet("iphone", "galaxy", "redmi", "motorola"))

	phoneText = []string{"celular", "telefono", "smartphone", "iphone", "samsung", "xiaomi", "motorola"}
)

// Specs carries the security modifier.
type Specs struct {
	Security bool `json:"security"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return "" }

// Matches keeps only surveillance products when the security modifier is set.
func (s *Specs) Matches(p *product.Product) bool {
	if !s.Security {
		return true
	}
	return IsSecurityProduct(p)
}

// IsSecurityModifier reports whether the query asks for surveillance.
func IsSecurityModifier(q string) bool {
	return securityWords.Any(normalize.Tokens(q))
}

// IsSecurityProduct reports a surveillance signal in the product text.
func IsSecurityProduct(p *product.Product) bool {
	return securityWords.InText(text.Build(p))
}

// Extractor implements intent.Extractor for cameras.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the camera extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Camera }

// IsQuery accepts camera words unless a phone is named.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	return cameraWords.Any(toks) && !phoneWords.Any(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	return &Specs{Security: IsSecurityModifier(q)}
}

// IsProduct requires a camera word and rejects phones advertising a camera.
func (Extractor) IsProduct(p *product.Product) bool {
	t := text.Build(p)
	if !cameraWords.InText(t) {
		return false
	}
	return !text.ContainsAny(t, phoneText...)
}

// CategoryHint points security queries at the surveillance category.
func (Extractor) CategoryHint(s intent.Specs) []string {
	if cs, ok := s.(*Specs); ok && cs.Security {
		return []string{"tecnologia", "camaras de seguridad"}
	}
	return []string{"tecnologia", "camaras"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return append(cameraWords.Words(), securityWords.Words()...)
}
