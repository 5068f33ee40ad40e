// Package speaker detects speaker and soundbar queries and matches them by
// brand, type, connectivity, power and channels.
package speaker

import (
	"math"
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

// Speaker types.
const (
	TypeSoundbar    = "soundbar"
	TypeSubwoofer   = "subwoofer"
	TypeHomeTheater = "home-theater"
	TypeTower       = "torre"
	TypePortable    = "portatil"
)

const driverTolerance = 0.15

var (
	speakerWords = attr.NewSet(
		"parlante", "parlantes", "altavoz", "altavoces", "speaker", "speakers",
		"bafle", "bafles", "bocina", "bocinas", "subwoofer", "woofer", "soundbar",
	)
	speakerPhrases  = []string{"barra de sonido", "home theater", "torre de sonido", "partybox", "sound bar"}
	soundbarPhrases = []string{"soundbar", "barra de sonido", "sound bar"}

	brands = attr.NewAliases(map[string]string{
		"jbl": "jbl", "sony": "sony", "bose": "bose", "samsung": "samsung", "lg": "lg",
		"philips": "philips", "panasonic": "panasonic", "xiaomi": "xiaomi",
		"anker": "anker", "soundcore": "anker", "harman": "harman kardon",
		"harman kardon": "harman kardon", "marshall": "marshall", "skullcandy": "skullcandy",
		"edifier": "edifier", "logitech": "logitech", "genius": "genius", "thonet": "thonet",
		"noga": "noga", "gadnic": "gadnic", "noblex": "noblex",
	})

	connectivityWords = attr.NewSet(
		"bluetooth", "bt", "wifi", "wi-fi", "aux", "jack", "3.5mm", "usb", "usbc", "usb-c",
		"typec", "type-c", "rca", "optico", "toslink", "hdmi", "arc", "earc", "nfc",
		"microsd", "sd", "fm",
	)
	// Checked in order; the first present wins.
	connectivityPriority = []string{"bluetooth", "wifi", "aux", "hdmi", "arc", "earc", "optico", "toslink", "rca", "usb"}

	useCaseWords = attr.NewSet(
		"portatil", "portable", "inalambrico", "karaoke", "microfono",
		"luces", "rgb", "waterproof", "impermeable", "resistente",
	)

	otherSignals = attr.Union(
		attr.PhoneSignals, attr.NotebookSignals, attr.TVSignals, attr.VehicleSignals,
		attr.NewSet("hdr"),
	)

	accessoryRe = attr.WordRe(
		"cables?", "adaptador", "adapter", "soportes?", "pie", "tripode", "montaje",
		"control remoto", "control", "remote", "repuesto", "bateria", "funda", "case", "bolso", "estuche",
	)

	wattsRe    = regexp.MustCompile(`\b(\d{1,4})\s*w\b`)
	channelsRe = regexp.MustCompile(`(?:^|\s)(2\.0|2\.1|3\.1|5\.1|7\.1)(?:\s|$)`)
	driverRe   = regexp.MustCompile(`\b(\d{1,2}(?:[.,]\d)?)\s*("|pulgadas|pulgada|inch|in)(?:\s|$)`)
	mahRe      = regexp.MustCompile(`\b(\d{3,6})\s*mah\b`)
)

// Specs are the speaker attributes parsed from a query.
type Specs struct {
	Brand           string   `json:"brand,omitempty"`
	Connectivity    string   `json:"connectivity,omitempty"`
	Watts           int      `json:"watts,omitempty"`
	Channels        string   `json:"channels,omitempty"`
	DriverInches    *float64 `json:"driver_inches,omitempty"`
	BatteryMAh      int      `json:"battery_mah,omitempty"`
	Type            string   `json:"type,omitempty"`
	WantsMic        bool     `json:"wants_mic,omitempty"`
	WantsRGB        bool     `json:"wants_rgb,omitempty"`
	WantsWaterproof bool     `json:"wants_waterproof,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches filters by brand, type, connectivity and channels. Watts, driver
// size and battery only reject a product that states a different value.
// Accessories never match.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	switch {
	case s.Brand == "anker":
		if !text.ContainsAny(t, "anker", "soundcore") {
			return false
		}
	case s.Brand != "":
		if !strings.Contains(t, s.Brand) {
			return false
		}
	}
	if s.Type != "" && !typeMatches(t, s.Type) {
		return false
	}
	if c := s.Connectivity; c != "" {
		if c == "bluetooth" {
			if !text.ContainsAny(t, "bluetooth", "bt") {
				return false
			}
		} else if !strings.Contains(t, c) {
			return false
		}
	}
	if s.Watts > 0 {
		if w := productWatts(p); w > 0 && w != s.Watts {
			return false
		}
	}
	if s.Channels != "" && !strings.Contains(t, s.Channels) {
		return false
	}
	if s.DriverInches != nil {
		if in, ok := productDriverInches(p); ok && math.Abs(in-*s.DriverInches) > driverTolerance {
			return false
		}
	}
	if s.BatteryMAh > 0 && strings.Contains(t, "mah") && !strings.Contains(t, strconv.Itoa(s.BatteryMAh)) {
		return false
	}
	return !accessoryRe.MatchString(t)
}

// SoftMatches prefers microphone, lighting and waterproof models when asked.
func (s *Specs) SoftMatches(p *product.Product) bool {
	t := text.Build(p)
	if s.WantsMic && !text.ContainsAny(t, "microfono", "karaoke") {
		return false
	}
	if s.WantsRGB && !text.ContainsAny(t, "rgb", "luces", "led") {
		return false
	}
	if s.WantsWaterproof && !text.ContainsAny(t, "waterproof", "impermeable", "ipx", "ip67", "sumergible") {
		return false
	}
	return true
}

func typeMatches(t, typ string) bool {
	switch typ {
	case TypeSoundbar:
		return text.ContainsAny(t, "soundbar", "barra de sonido")
	case TypeHomeTheater:
		return strings.Contains(t, "home theater")
	case TypePortable:
		return text.ContainsAny(t, "portatil", "portable")
	default:
		return strings.Contains(t, typ)
	}
}

func productWatts(p *product.Product) int {
	if p == nil {
		return 0
	}
	m := wattsRe.FindStringSubmatch(normalize.Text(p.Title))
	if m == nil {
		return 0
	}
	return attr.Atoi(m[1])
}

func productDriverInches(p *product.Product) (float64, bool) {
	if p == nil {
		return 0, false
	}
	m := driverRe.FindStringSubmatch(normalize.Text(p.Title))
	if m == nil {
		return 0, false
	}
	return attr.ParseFloat(m[1]), true
}

// Extractor implements intent.Extractor for speakers.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the speaker extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.Speaker }

// IsQuery accepts speaker words and phrases, or a speaker brand with a
// connectivity or use-case word and no other domain's signal. Headphone
// words always veto it.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	if attr.HeadphoneWords.Any(toks) {
		return false
	}
	if speakerWords.Any(toks) || text.ContainsAny(joined, speakerPhrases...) {
		return true
	}
	if otherSignals.Any(toks) {
		return false
	}
	if _, ok := brands.Resolve(toks); !ok {
		return false
	}
	return connectivityWords.Any(toks) || useCaseWords.Any(toks)
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	set := attr.NewSet(toks...)
	s := &Specs{}

	if b, ok := brands.Resolve(toks); ok {
		s.Brand = b
	}
	for _, c := range connectivityPriority {
		if set.Has(c) || (c == "wifi" && set.Has("wi-fi")) || (c == "bluetooth" && set.Has("bt")) {
			s.Connectivity = c
			break
		}
	}
	if m := wattsRe.FindStringSubmatch(joined); m != nil {
		s.Watts = attr.Atoi(m[1])
	}
	if m := channelsRe.FindStringSubmatch(joined); m != nil {
		s.Channels = m[1]
	}
	if m := driverRe.FindStringSubmatch(joined); m != nil {
		in := attr.ParseFloat(m[1])
		s.DriverInches = &in
	}
	if m := mahRe.FindStringSubmatch(joined); m != nil {
		s.BatteryMAh = attr.Atoi(m[1])
	}

	switch {
	case text.ContainsAny(joined, soundbarPhrases...):
		s.Type = TypeSoundbar
	case set.Has("subwoofer"):
		s.Type = TypeSubwoofer
	case strings.Contains(joined, "home theater"):
		s.Type = TypeHomeTheater
	case strings.Contains(joined, "torre de sonido") || set.Has("torre"):
		s.Type = TypeTower
	case set.Has("portatil") || set.Has("portable"):
		s.Type = TypePortable
	}

	s.WantsMic = set.Has("microfono") || set.Has("karaoke")
	s.WantsRGB = set.Has("rgb") || set.Has("luces")
	s.WantsWaterproof = set.Has("waterproof") || set.Has("impermeable")
	return s
}

// IsProduct trusts the speakers category, else requires speaker wording and
// no accessory words.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "parlantes"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "parlante", "altavoz", "speaker", "bafle", "subwoofer", "soundbar", "barra de sonido") {
		return false
	}
	return !accessoryRe.MatchString(t)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "parlantes"}
}

// DropTokens implements intent.Extractor.
func (Extractor) DropTokens(string) []string {
	return append(speakerWords.Words(), "barra", "sonido", "bluetooth", "bt", "portatil", "portable")
}
