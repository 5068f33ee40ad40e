// Package text derives the normalized searchable view of a product and
// implements the generic token-containment match.
package text

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

var stopwords = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "el": {}, "los": {},
	"un": {}, "una": {}, "unos": {}, "unas": {}, "y": {}, "o": {},
	"para": {}, "con": {}, "sin": {}, "en": {}, "por": {}, "a": {},
}

// IsStopword reports whether a normalized token carries no search meaning.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

// Build returns the normalized concatenation of title, region and category names.
func Build(p *product.Product) string {
	if p == nil {
		return ""
	}
	cats := strings.Join(p.CategoryNames(), " ")
	return normalize.Text(p.Title + " " + p.StateName() + " " + cats)
}

// CategoryPath returns the product's category names, normalized, root first.
func CategoryPath(p *product.Product) []string {
	names := p.CategoryNames()
	for i, n := range names {
		names[i] = normalize.Text(n)
	}
	return names
}

// MeaningfulTokens tokenizes q and removes stopwords and the drop set.
func MeaningfulTokens(q string, drop []string) []string {
	dropSet := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropSet[normalize.Text(d)] = struct{}{}
	}
	toks := normalize.Tokens(q)
	out := toks[:0]
	for _, t := range toks {
		if IsStopword(t) {
			continue
		}
		if _, ok := dropSet[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MatchesQuery reports whether every meaningful token of q is a substring of
// the product's searchable text. A query without meaningful tokens matches.
func MatchesQuery(p *product.Product, q string, drop []string) bool {
	toks := MeaningfulTokens(q, drop)
	if len(toks) == 0 {
		return true
	}
	return ContainsAll(Build(p), toks)
}

// ContainsAll reports whether s contains every token.
func ContainsAll(s string, toks []string) bool {
	for _, t := range toks {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s contains at least one of the words.
func ContainsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
