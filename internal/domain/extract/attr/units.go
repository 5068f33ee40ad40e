package attr

import (
	"regexp"
	"strconv"
	"strings"
)

// Capacity is a storage or memory size with its unit ("gb" or "tb").
type Capacity struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// GB returns the capacity in gigabytes.
func (c Capacity) GB() int {
	if c.Unit == "tb" {
		return c.Value * 1024
	}
	return c.Value
}

// String renders the capacity the way catalog titles write it ("512gb").
func (c Capacity) String() string {
	return strconv.Itoa(c.Value) + c.Unit
}

var (
	capacityRe = regexp.MustCompile(`\b(\d{1,4})\s?(gb|tb)\b`)
	comboRe    = regexp.MustCompile(`\b(\d{1,2})\s?gb\s*[/\-+]\s*(\d{2,4})\s?(gb|tb)\b`)
)

// Capacities returns every "<n>gb" / "<n>tb" mention in order.
func Capacities(text string) []Capacity {
	var out []Capacity
	for _, m := range capacityRe.FindAllStringSubmatch(text, -1) {
		out = append(out, Capacity{Value: Atoi(m[1]), Unit: m[2]})
	}
	return out
}

// MemoryCombo parses combined "8gb/256gb" tokens into RAM and storage.
func MemoryCombo(text string) (ram int, storage Capacity, ok bool) {
	m := comboRe.FindStringSubmatch(text)
	if m == nil {
		return 0, Capacity{}, false
	}
	return Atoi(m[1]), Capacity{Value: Atoi(m[2]), Unit: m[3]}, true
}

// SplitMemory assigns capacities to RAM and storage. A combined token wins;
// otherwise TB values and GB values of at least storageMinGB are storage and
// the remaining GB values are RAM. The first candidate of each kind is kept.
func SplitMemory(text string, storageMinGB int) (ram int, storage *Capacity) {
	if r, s, ok := MemoryCombo(text); ok {
		return r, &s
	}
	for _, c := range Capacities(text) {
		if c.Unit == "tb" || c.Value >= storageMinGB {
			if storage == nil {
				cc := c
				storage = &cc
			}
			continue
		}
		if ram == 0 {
			ram = c.Value
		}
	}
	return ram, storage
}

// Atoi parses a decimal integer, returning 0 on failure.
func Atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseFloat parses a decimal number that may use a comma separator.
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// WordRe compiles a pattern that must match on word boundaries.
func WordRe(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
}
