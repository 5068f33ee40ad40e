// Package normalize folds free text into the comparable form used by every
// matcher: lowercase, diacritics removed, whitespace tokenized.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMarks = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
})

// Text lowercases s, decomposes it (NFD) and strips combining diacritical marks.
func Text(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Tokens normalizes s and splits it on runs of whitespace.
func Tokens(s string) []string {
	return strings.Fields(Text(s))
}

// irregular holds plural forms the suffix rules get wrong.
var irregular = map[string]string{
	"hombres": "hombre",
	"mujeres": "mujer",
	"ninos":   "nino",
	"ninas":   "nina",
}

// step applies a single reduction: irregular table, then -es, then -s.
func step(w string) string {
	if v, ok := irregular[w]; ok {
		return v
	}
	if len(w) > 4 && strings.HasSuffix(w, "es") {
		return w[:len(w)-2]
	}
	if len(w) > 3 && strings.HasSuffix(w, "s") {
		return w[:len(w)-1]
	}
	return w
}

// Stem normalizes w and reduces it to a crude singular root.
//
// A candidate is accepted only when a further reduction would leave it
// unchanged, so Stem(Stem(w)) == Stem(w) for every w.
func Stem(w string) string {
	w = Text(w)
	if v, ok := irregular[w]; ok {
		return v
	}
	if len(w) > 4 && strings.HasSuffix(w, "es") {
		if c := w[:len(w)-2]; step(c) == c {
			return c
		}
	}
	if len(w) > 3 && strings.HasSuffix(w, "s") {
		if c := w[:len(w)-1]; step(c) == c {
			return c
		}
	}
	return w
}

// StemTokens tokenizes s and stems every token.
func StemTokens(s string) []string {
	toks := Tokens(s)
	for i, t := range toks {
		toks[i] = Stem(t)
	}
	return toks
}
