// Package notebook detects laptop queries and matches laptops by brand, CPU
// tier, RAM and storage.
package notebook

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Storage values start here; smaller GB figures are read as RAM.
const storageMinGB = 128

var (
	notebookWords = attr.NewSet("notebook", "notebooks", "laptop", "laptops", "macbook", "ultrabook")
	brandWords    = attr.NewSet("lenovo", "hp", "dell", "asus", "acer", "apple", "msi", "gigabyte", "samsung", "huawei", "macbook")
	// Brands that sell laptops but not phones; a bare GB figure is enough context.
	exclusiveBrands = attr.NewSet("lenovo", "hp", "dell", "asus", "acer", "msi", "gigabyte")
	brands          = attr.NewAliases(map[string]string{
		"lenovo": "lenovo", "hp": "hp", "dell": "dell", "asus": "asus", "acer": "acer",
		"apple": "apple", "macbook": "apple", "msi": "msi", "gigabyte": "gigabyte",
		"samsung": "samsung", "huawei": "huawei",
	})

	tabletSignals = attr.NewSet("tablet", "tablets", "tab", "ipad", "matepad")
	phoneSignals  = attr.NewSet("celu", "celular", "telefono", "smartphone")
	tvSignals     = attr.NewSet("tv", "tele", "televisor", "pulgadas")

	cpuWords     = attr.NewSet("i3", "i5", "i7", "i9", "ryzen")
	storageWords = attr.NewSet("ssd", "hdd", "nvme")

	gbTokenRe = regexp.MustCompile(`^\d{1,3}gb$`)
	intelRe   = regexp.MustCompile(`\b(i[3579])\b`)
	ryzenRe   = regexp.MustCompile(`\bryzen\s?([3579])\b`)
)

// CPU is a processor family and tier ("intel"/"i5", "amd"/"ryzen5").
type CPU struct {
	Brand string `json:"brand"`
	Tier  string `json:"tier"`
}

// Specs are the laptop attributes parsed from a query.
type Specs struct {
	Brand   string         `json:"brand,omitempty"`
	RAMGB   int            `json:"ram_gb,omitempty"`
	Storage *attr.Capacity `json:"storage,omitempty"`
	CPU     *CPU           `json:"cpu,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches requires brand, CPU tier, RAM and storage to appear in the text.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	switch {
	case s.Brand == "apple":
		if !text.ContainsAny(t, "macbook", "apple") {
			return false
		}
	case s.Brand != "":
		if !strings.Contains(t, s.Brand) {
			return false
		}
	}
	if s.CPU != nil && !cpuMatches(t, *s.CPU) {
		return false
	}
	if s.RAMGB > 0 && !strings.Contains(t, attr.Capacity{Value: s.RAMGB, Unit: "gb"}.String()) {
		return false
	}
	if s.Storage != nil && !strings.Contains(t, s.Storage.String()) {
		return false
	}
	return true
}

func cpuMatches(t string, c CPU) bool {
	if c.Brand == "amd" {
		m := ryzenRe.FindStringSubmatch(t)
		return m != nil && "ryzen"+m[1] == c.Tier
	}
	return strings.Contains(t, c.Tier)
}

// Extractor implements intent.Extractor for notebooks.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the notebook extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Notebook }

// IsQuery accepts a notebook word, or a brand with hardware context. Tablet,
// phone and TV words veto the match.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if tabletSignals.Any(toks) || phoneSignals.Any(toks) || tvSignals.Any(toks) {
		return false
	}
	if notebookWords.Any(toks) {
		return true
	}
	if !brandWords.Any(toks) {
		return false
	}
	if cpuWords.Any(toks) || storageWords.Any(toks) {
		return true
	}
	if exclusiveBrands.Any(toks) {
		for _, t := range toks {
			if gbTokenRe.MatchString(t) {
				return true
			}
		}
	}
	return false
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{}
	s.Brand, _ = brands.Resolve(toks)
	s.RAMGB, s.Storage = attr.SplitMemory(joined, storageMinGB)
	if m := intelRe.FindStringSubmatch(joined); m != nil {
		s.CPU = &CPU{Brand: "intel", Tier: m[1]}
	} else if m := ryzenRe.FindStringSubmatch(joined); m != nil {
		s.CPU = &CPU{Brand: "amd", Tier: "ryzen" + m[1]}
	}
	return s
}

// IsProduct implements intent.Extractor.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "notebooks"}) {
		return true
	}
	return text.ContainsAny(text.Build(p), "notebook", "laptop", "macbook", "ultrabook")
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "notebooks"}
}

// DropTokens returns the laptop synonyms, which catalog titles rarely repeat.
func (Extractor) DropTokens(string) []string {
	return notebookWords.Words()
}
