package search

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/search/request"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

// Engine runs the search pipeline over an immutable catalog. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	detector *Detector
}

// NewEngine creates an engine around a detector.
func NewEngine(d *Detector) *Engine {
	return &Engine{detector: d}
}

// DetectIntent classifies a query.
func (e *Engine) DetectIntent(query string) intent.Intent {
	return e.detector.Detect(query)
}

// Search narrows, ranks and truncates the catalog for one request.
func (e *Engine) Search(catalog []product.Product, req *request.Request) result.Result {
	q := strings.Join(normalize.Tokens(req.Query()), " ")
	in := e.detector.Detect(q)

	pool := make([]*product.Product, len(catalog))
	for i := range catalog {
		pool[i] = &catalog[i]
	}

	var fallbacks []result.Stage
	note := func(s result.Stage, reverted bool) {
		if reverted {
			fallbacks = append(fallbacks, s)
		}
	}

	if in.HasHint() {
		var reverted bool
		pool, reverted = failOpen(pool, func(p *product.Product) bool {
			return category.MatchesPrefix(p, in.CategoryHint)
		})
		note(result.StageCategory, reverted)
	}

	var drop []string
	if ex := in.Extractor(); ex != nil {
		pool = filter(pool, ex.IsProduct)
		if in.Specs != nil {
			pool = filter(pool, in.Specs.Matches)
			if soft, ok := in.Specs.(intent.SoftMatcher); ok {
				var reverted bool
				pool, reverted = failOpen(pool, soft.SoftMatches)
				note(result.StageSoft, reverted)
			}
		}
		drop = ex.DropTokens(q)
	}

	matched := filter(pool, func(p *product.Product) bool {
		return text.MatchesQuery(p, q, drop)
	})
	if len(matched) == 0 && in.HasHint() && len(pool) > 0 {
		note(result.StageText, true)
	} else {
		pool = matched
	}

	pool = rank(pool, q, in)
	if len(pool) > req.Limit() {
		pool = pool[:req.Limit()]
	}

	var crumb []string
	if len(pool) > 0 {
		if names := pool[0].CategoryNames(); len(names) > 0 {
			crumb = names
		}
	}
	return result.New(pool, crumb, in, fallbacks)
}

// filter keeps the products satisfying keep, in order.
func filter(in []*product.Product, keep func(*product.Product) bool) []*product.Product {
	out := make([]*product.Product, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// failOpen applies keep and returns the input unchanged when nothing
// survives. The flag reports that the narrowing was discarded.
func failOpen[T any](in []T, keep func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 && len(in) > 0 {
		return in, true
	}
	return out, false
}
