package attr

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
)

// Aliases resolves query words, including multi-word phrases, to canonical values.
type Aliases struct {
	words   map[string]string
	phrases []phrase
	values  []string
}

type phrase struct {
	text  string
	value string
}

// NewAliases builds a table from alias to canonical value. Aliases containing
// spaces are matched as phrases before single tokens, longest first.
func NewAliases(m map[string]string) *Aliases {
	a := &Aliases{words: make(map[string]string, len(m))}
	seen := make(map[string]struct{})
	for k, v := range m {
		k = strings.Join(normalize.Tokens(k), " ")
		if strings.Contains(k, " ") {
			a.phrases = append(a.phrases, phrase{text: k, value: v})
		} else {
			a.words[k] = v
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			a.values = append(a.values, v)
		}
	}
	sort.Slice(a.phrases, func(i, j int) bool {
		if len(a.phrases[i].text) != len(a.phrases[j].text) {
			return len(a.phrases[i].text) > len(a.phrases[j].text)
		}
		return a.phrases[i].text < a.phrases[j].text
	})
	sort.Strings(a.values)
	return a
}

// Resolve returns the canonical value of the first alias found in tokens.
func (a *Aliases) Resolve(tokens []string) (string, bool) {
	if len(a.phrases) > 0 {
		joined := Padded(tokens)
		for _, p := range a.phrases {
			if strings.Contains(joined, " "+p.text+" ") {
				return p.value, true
			}
		}
	}
	for _, t := range tokens {
		if v, ok := a.words[t]; ok {
			return v, true
		}
	}
	return "", false
}

// Lookup resolves a single token.
func (a *Aliases) Lookup(tok string) (string, bool) {
	v, ok := a.words[tok]
	return v, ok
}

// Collect returns the distinct canonical values found in tokens, in query order.
func (a *Aliases) Collect(tokens []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range tokens {
		v, ok := a.words[t]
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Keys returns the single-word aliases.
func (a *Aliases) Keys() []string {
	out := make([]string, 0, len(a.words))
	for k := range a.words {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Values returns the distinct canonical values, sorted.
func (a *Aliases) Values() []string { return a.values }

// DeclaresAny reports whether text contains any canonical value.
func (a *Aliases) DeclaresAny(text string) bool {
	for _, v := range a.values {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}
