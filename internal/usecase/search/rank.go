package search

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Ranking weights.
const (
	scorePhrase   = 50
	scoreCategory = 40
	scoreBrand    = 15
)

// score sums the ranking signals for one product. q is the normalized query.
func score(p *product.Product, q string, in intent.Intent) int {
	t := text.Build(p)
	s := 0
	if q != "" && strings.Contains(t, q) {
		s += scorePhrase
	}
	if in.HasHint() && category.MatchesPrefix(p, in.CategoryHint) {
		s += scoreCategory
	}
	if b := normalize.Text(in.Brand); b != "" && strings.Contains(t, b) {
		s += scoreBrand
	}
	return s
}

// rank orders products by descending score. Ties keep input order.
func rank(items []*product.Product, q string, in intent.Intent) []*product.Product {
	scores := make(map[*product.Product]int, len(items))
	for _, p := range items {
		scores[p] = score(p, q, in)
	}
	out := append([]*product.Product(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}
