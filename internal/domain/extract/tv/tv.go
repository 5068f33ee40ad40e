// Package tv detects television queries and matches TVs by screen size,
// resolution and panel.
package tv

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

// Resolutions, widest first.
const (
	Res8K     = "8k"
	Res4K     = "4k"
	ResFullHD = "fullhd"
	ResHD     = "hd"
)

// minScreenInches is the smallest size that alone makes a query a TV query.
const minScreenInches = 24

var (
	tvWords = attr.NewSet("tv", "tele", "teles", "televisor", "televisores", "smarttv", "smart-tv")
	// "smart" and "pantalla" are shared with watches, speakers and spare parts.
	weakWords = attr.NewSet("smart", "pantalla")
	vetoWords = attr.Union(
		attr.PhoneSignals, attr.TabletWords, attr.WatchWords, attr.HeadphoneWords,
		attr.NewSet("notebook", "laptop", "monitor", "parlante", "parlantes", "soundbar", "subwoofer", "repuesto", "proyector"),
	)
	vetoPhrases = []string{"barra de sonido", "sound bar", "home theater"}

	queryInchesRe   = regexp.MustCompile(`(?:^|\s)(\d{2,3})\s*(?:pulgadas|pulgada|"|inch|in)?(?:\s|$)`)
	unitInchesRe    = regexp.MustCompile(`(?:^|\s)(\d{2,3})\s*(?:pulgadas|pulgada|"|inch|in)(?:\s|$)`)
	productInchesRe = regexp.MustCompile(`(\d{2,3})\s*(?:"|pulgadas|pulgada|inch\b|in\b)`)
	fullHDRe        = regexp.MustCompile(`\bfull\s?hd\b|\b1080p?\b`)
	hdRe            = attr.WordRe("hd", "720p")
	uhdRe           = attr.WordRe("4k", "uhd", "2160p")
	panelLEDRe      = attr.WordRe("led")
)

// Specs are the television attributes parsed from a query.
type Specs struct {
	Inches     int    `json:"inches,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	Panel      string `json:"panel,omitempty"`
}

// BrandName implements intent.Specs. TV queries carry no brand constraint.
func (s *Specs) BrandName() string { return "" }

// Matches requires the exact screen size when one was asked, the resolution
// family and the panel technology.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	if s.Inches > 0 {
		if p == nil || ProductInches(p.Title) != s.Inches {
			return false
		}
	}
	switch s.Resolution {
	case "":
	case Res4K:
		if !uhdRe.MatchString(t) {
			return false
		}
	case ResFullHD:
		if !fullHDRe.MatchString(t) {
			return false
		}
	default:
		if !strings.Contains(t, s.Resolution) {
			return false
		}
	}
	switch s.Panel {
	case "":
	case "led":
		if !panelLEDRe.MatchString(t) {
			return false
		}
	default:
		if !strings.Contains(t, s.Panel) {
			return false
		}
	}
	return true
}

// ProductInches reads the screen size from a title, 0 when absent.
func ProductInches(title string) int {
	m := productInchesRe.FindStringSubmatch(normalize.Text(title))
	if m == nil {
		return 0
	}
	return attr.Atoi(m[1])
}

// Extractor implements intent.Extractor for televisions.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the TV extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.TV }

// IsQuery accepts TV words unless the query names another device, such as a
// soundbar for a TV. "smart" and "pantalla" need a screen size or a
// resolution, and a bare size in inches counts when it is TV sized.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	if vetoWords.Any(toks) || text.ContainsAny(joined, vetoPhrases...) {
		return false
	}
	if tvWords.Any(toks) {
		return true
	}
	if m := unitInchesRe.FindStringSubmatch(joined); m != nil && attr.Atoi(m[1]) >= minScreenInches {
		return true
	}
	return weakWords.Any(toks) && (queryInchesRe.MatchString(joined) || uhdRe.MatchString(joined))
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	joined := strings.Join(normalize.Tokens(q), " ")
	s := &Specs{}
	if m := queryInchesRe.FindStringSubmatch(joined); m != nil {
		s.Inches = attr.Atoi(m[1])
	}

	switch {
	case strings.Contains(joined, "8k"):
		s.Resolution = Res8K
	case uhdRe.MatchString(joined):
		s.Resolution = Res4K
	case fullHDRe.MatchString(joined):
		s.Resolution = ResFullHD
	case hdRe.MatchString(joined):
		s.Resolution = ResHD
	}

	switch {
	case strings.Contains(joined, "oled"):
		s.Panel = "oled"
	case strings.Contains(joined, "qled"):
		s.Panel = "qled"
	case panelLEDRe.MatchString(joined):
		s.Panel = "led"
	}
	return s
}

// IsProduct trusts the televisions category, else looks for TV wording.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "televisores"}) {
		return true
	}
	t := text.Build(p)
	return text.ContainsAny(t, "televisor", "smart tv", " tv ") || strings.HasPrefix(t, "tv ")
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "televisores"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return []string{
		"tv", "tele", "teles", "televisor", "televisores", "smart", "smarttv", "smart-tv",
		"pantalla", "pulgadas", "pulgada",
	}
}
