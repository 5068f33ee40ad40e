// Package pc detects desktop computer queries and matches prebuilt PCs by
// brand, gamer intent, memory, CPU and GPU.
package pc

import (
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

var (
	pcWords     = attr.NewSet("pc", "pcs", "computadora", "computador", "desktop", "escritorio", "torre", "gabinete", "cpu")
	gamerWords  = attr.NewSet("gamer", "gaming", "rtx", "gtx", "rx", "radeon", "geforce", "nvidia", "ryzen", "fps", "144hz", "240hz")
	gamerIntent = attr.NewSet("gamer", "gaming")
	brandWords  = attr.NewSet("hp", "dell", "lenovo", "asus", "acer", "msi", "gigabyte", "aorus", "corsair", "alienware")

	notebookSignals = attr.NewSet("notebook", "laptop", "ultrabook")
	tabletSignals   = attr.NewSet("tablet", "ipad", "galaxy", "tab")
	phoneSignals    = attr.NewSet("celu", "celular", "celulares", "telefono", "telefonos", "smartphone")

	accessories = []string{
		"monitor", "teclado", "mouse", "mause", "auricular", "headset", "parlante",
		"impresora", "tinta", "cartucho", "cable", "adaptador", "mother",
		"placa madre", "memoria ram", "disco solido", "fuente de alimentacion",
	}
	gamerText = []string{"gamer", "gaming", "rtx", "gtx", "rx", "geforce", "radeon"}

	specSignalRe = regexp.MustCompile(`\bi[3579]\b|\bryzen\b|\br[3579]\b|\brtx\b|\bgtx\b|\brx\b`)
	gbTokenRe    = regexp.MustCompile(`^\d{1,4}gb$`)
	tbTokenRe    = regexp.MustCompile(`^\d{1,2}tb$`)
	comboGBRe    = regexp.MustCompile(`\b(\d{1,2})gb\s*[/\-]\s*(\d{2,4})gb\b`)
	comboBareRe  = regexp.MustCompile(`\b(\d{1,2})\s*[/\-]\s*(\d{2,4})\b`)
	intelRe      = regexp.MustCompile(`\b(i[3579])\s*-?\s*(\d{4,5})?\b`)
	ryzenRe      = regexp.MustCompile(`\b(?:ryzen|r)\s*([3579])\s*(\d{4,5}[a-z]?)?\b`)
	rtxRe        = regexp.MustCompile(`\brtx\s*(\d{3,4})\b`)
	gtxRe        = regexp.MustCompile(`\bgtx\s*(\d{3,4})\b`)
	rxRe         = regexp.MustCompile(`\brx\s*(\d{3,4})\b`)
)

// CPU is a processor parsed from "i5-12400", "ryzen 5 5600" or "r5".
type CPU struct {
	Brand string `json:"brand"`
	Tier  string `json:"tier"`
	Model string `json:"model,omitempty"`
}

// GPU is a graphics card parsed from "rtx 3060", "rx 6600" or "integrada".
type GPU struct {
	Brand  string `json:"brand"`
	Series string `json:"series,omitempty"`
	Model  string `json:"model,omitempty"`
}

// Specs are the desktop attributes parsed from a query. RAM and Storage are
// GB values as digit strings; terabytes are converted.
type Specs struct {
	Brand       string `json:"brand,omitempty"`
	WantsGamer  bool   `json:"wants_gamer,omitempty"`
	RAM         string `json:"ram,omitempty"`
	Storage     string `json:"storage,omitempty"`
	StorageType string `json:"storage_type,omitempty"`
	CPU         *CPU   `json:"cpu,omitempty"`
	GPU         *GPU   `json:"gpu,omitempty"`
	BuildType   string `json:"build_type,omitempty"`
}

// BrandName implements intent.Specs.
func (s *Specs) BrandName() string { return s.Brand }

// Matches applies brand, gamer, memory, CPU and GPU as hard filters.
func (s *Specs) Matches(p *product.Product) bool {
	t := text.Build(p)
	switch {
	case s.Brand == "dell":
		if !text.ContainsAny(t, "dell", "alienware") {
			return false
		}
	case s.Brand != "":
		if !strings.Contains(t, s.Brand) {
			return false
		}
	}
	if s.WantsGamer && !text.ContainsAny(t, gamerText...) {
		return false
	}
	if s.RAM != "" && !strings.Contains(t, s.RAM+"gb") {
		return false
	}
	if s.Storage != "" && !storageMatches(t, s.Storage) {
		return false
	}
	if c := s.CPU; c != nil {
		if !cpuMatches(t, c) {
			return false
		}
		if c.Model != "" && !strings.Contains(t, c.Model) {
			return false
		}
	}
	if g := s.GPU; g != nil {
		if g.Series != "" && !strings.Contains(t, g.Series) {
			return false
		}
		if g.Model != "" && !strings.Contains(t, g.Model) {
			return false
		}
	}
	return true
}

// SoftMatches prefers the requested storage technology.
func (s *Specs) SoftMatches(p *product.Product) bool {
	if s.StorageType == "" {
		return true
	}
	t := text.Build(p)
	if s.StorageType == "nvme" {
		return text.ContainsAny(t, "nvme", "m.2", "m2")
	}
	return strings.Contains(t, s.StorageType)
}

func storageMatches(t, gb string) bool {
	if strings.Contains(t, gb+"gb") {
		return true
	}
	n := attr.Atoi(gb)
	return n >= 1024 && n%1024 == 0 && strings.Contains(t, strconv.Itoa(n/1024)+"tb")
}

func cpuMatches(t string, c *CPU) bool {
	if c.Brand != "amd" {
		return strings.Contains(t, c.Tier)
	}
	if strings.Contains(t, c.Tier) {
		return true
	}
	m := ryzenRe.FindStringSubmatch(t)
	return m != nil && "r"+m[1] == c.Tier
}

// Extractor implements intent.Extractor for desktop PCs.
type Extractor struct{}

var _ intent.Extractor = Extractor{}

// New returns the PC extractor.
func New() Extractor { return Extractor{} }

// Kind implements intent.Extractor.
func (Extractor) Kind() intent.Kind { return intent.PC }

// IsQuery accepts a PC word or a gamer signal, or a brand with a spec signal.
func (Extractor) IsQuery(q string) bool {
	toks := normalize.Tokens(q)
	if notebookSignals.Any(toks) || tabletSignals.Any(toks) || phoneSignals.Any(toks) {
		return false
	}
	if pcWords.Any(toks) || gamerWords.Any(toks) {
		return true
	}
	joined := strings.Join(toks, " ")
	hasSpec := specSignalRe.MatchString(joined) ||
		attr.NewSet("ram", "ssd", "hdd").Any(toks)
	return brandWords.Any(toks) && hasSpec
}

// Parse implements intent.Extractor.
func (Extractor) Parse(q string) intent.Specs {
	toks := normalize.Tokens(q)
	joined := strings.Join(toks, " ")
	s := &Specs{}

	if b, ok := brandWords.First(toks); ok {
		if b == "alienware" {
			b = "dell"
		}
		s.Brand = b
	}
	s.WantsGamer = gamerIntent.Any(toks)

	if m := comboGBRe.FindStringSubmatch(joined); m != nil {
		s.RAM, s.Storage = m[1], m[2]
	} else if m := comboBareRe.FindStringSubmatch(joined); m != nil {
		a, b := attr.Atoi(m[1]), attr.Atoi(m[2])
		if a >= 4 && a <= 128 {
			s.RAM = strconv.Itoa(a)
		}
		if b >= 64 {
			s.Storage = strconv.Itoa(b)
		}
	}

	for i, t := range toks {
		next := ""
		if i+1 < len(toks) {
			next = toks[i+1]
		}
		if t == "ram" && gbTokenRe.MatchString(next) {
			s.RAM = strconv.Itoa(gbValue(next))
		}
		if gbTokenRe.MatchString(t) && next == "ram" {
			s.RAM = strconv.Itoa(gbValue(t))
		}
		switch t {
		case "ssd", "hdd", "nvme", "m2", "m.2":
			s.StorageType = t
			if t == "m2" || t == "m.2" {
				s.StorageType = "nvme"
			}
			if gbTokenRe.MatchString(next) || tbTokenRe.MatchString(next) {
				s.Storage = strconv.Itoa(gbValue(next))
			}
		}
		if s.Storage == "" && gbTokenRe.MatchString(t) {
			n := gbValue(t)
			if n >= 128 {
				s.Storage = strconv.Itoa(n)
			} else if s.RAM == "" && n >= 4 {
				s.RAM = strconv.Itoa(n)
			}
		}
		if s.Storage == "" && tbTokenRe.MatchString(t) {
			s.Storage = strconv.Itoa(gbValue(t))
		}
	}

	s.CPU = parseCPU(joined)
	s.GPU = parseGPU(joined)

	switch {
	case strings.Contains(joined, "prearmad") || strings.Contains(joined, "pre armad"):
		s.BuildType = "prearmada"
	case strings.Contains(joined, "armada") || strings.Contains(joined, "armado"):
		s.BuildType = "armada"
	}
	return s
}

// gbValue reads "16gb" as 16 and "2tb" as 2048.
func gbValue(tok string) int {
	if strings.HasSuffix(tok, "tb") {
		return attr.Atoi(strings.TrimSuffix(tok, "tb")) * 1024
	}
	return attr.Atoi(strings.TrimSuffix(tok, "gb"))
}

func parseCPU(joined string) *CPU {
	if m := intelRe.FindStringSubmatch(joined); m != nil {
		return &CPU{Brand: "intel", Tier: m[1], Model: m[2]}
	}
	if m := ryzenRe.FindStringSubmatch(joined); m != nil {
		return &CPU{Brand: "amd", Tier: "r" + m[1], Model: m[2]}
	}
	return nil
}

func parseGPU(joined string) *GPU {
	if m := rtxRe.FindStringSubmatch(joined); m != nil {
		return &GPU{Brand: "nvidia", Series: "rtx", Model: m[1]}
	}
	if m := gtxRe.FindStringSubmatch(joined); m != nil {
		return &GPU{Brand: "nvidia", Series: "gtx", Model: m[1]}
	}
	if m := rxRe.FindStringSubmatch(joined); m != nil {
		return &GPU{Brand: "amd", Series: "rx", Model: m[1]}
	}
	if text.ContainsAny(joined, "integrada", "uhd", "vega") {
		return &GPU{Brand: "integrada"}
	}
	return nil
}

// IsProduct trusts the PC category, else looks for desktop words and rejects
// peripherals and loose components.
func (Extractor) IsProduct(p *product.Product) bool {
	if category.MatchesPrefix(p, []string{"tecnologia", "pcs"}) {
		return true
	}
	t := text.Build(p)
	if !text.ContainsAny(t, "pc ", "pc gamer", "computadora", "desktop", "escritorio", "gabinete", "torre") {
		return false
	}
	return !text.ContainsAny(t, accessories...)
}

// CategoryHint implements intent.Extractor.
func (Extractor) CategoryHint(intent.Specs) []string {
	return []string{"tecnologia", "pcs"}
}

// DropTokens returns desktop nouns and the gamer words enforced by Matches.
func (Extractor) DropTokens(string) []string {
	return append(pcWords.Words(), "gamer", "gaming", "ram")
}
