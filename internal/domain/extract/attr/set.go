// Package attr holds the lookup tables and attribute parsers shared by the
// product-domain extractors.
package attr

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
)

// Set is an immutable set of normalized words.
type Set map[string]struct{}

// NewSet normalizes words into a set.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[normalize.Text(w)] = struct{}{}
	}
	return s
}

// NewStemmedSet holds every word both as given and stemmed.
func NewStemmedSet(words ...string) Set {
	s := make(Set, len(words)*2)
	for _, w := range words {
		w = normalize.Text(w)
		s[w] = struct{}{}
		s[normalize.Stem(w)] = struct{}{}
	}
	return s
}

// Union merges sets into a new one.
func Union(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}

// Has reports membership.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Any reports whether any token is in the set.
func (s Set) Any(tokens []string) bool {
	for _, t := range tokens {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// First returns the first token, in query order, that is in the set.
func (s Set) First(tokens []string) (string, bool) {
	for _, t := range tokens {
		if s.Has(t) {
			return t, true
		}
	}
	return "", false
}

// Collect returns the tokens found in the set, in query order.
func (s Set) Collect(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// InText reports whether any word of the set is a substring of text.
func (s Set) InText(text string) bool {
	for w := range s {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Words returns the set members in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Padded joins tokens with single spaces and pads both ends, so phrase tests
// can use " word " boundaries.
func Padded(tokens []string) string {
	return " " + strings.Join(tokens, " ") + " "
}
