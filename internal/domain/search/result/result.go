package result

import (
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// Stage names a fail-open narrowing step.
type Stage string

// Fail-open stages, in pipeline order.
const (
	StageCategory Stage = "category"
	StageSoft     Stage = "soft"
	StageText     Stage = "text"
)

// Result is the outcome of one search. An empty item list is a normal
// outcome, not an error.
type Result struct {
	items      []*product.Product
	breadcrumb []string
	intent     intent.Intent
	fallbacks  []Stage
}

// New creates a search result.
func New(items []*product.Product, breadcrumb []string, in intent.Intent, fallbacks []Stage) Result {
	return Result{items: items, breadcrumb: breadcrumb, intent: in, fallbacks: fallbacks}
}

// Items returns the ranked, truncated products.
func (r *Result) Items() []*product.Product { return r.items }

// Breadcrumb returns the top item's category path, or nil.
func (r *Result) Breadcrumb() []string { return r.breadcrumb }

// Intent returns the detected query intent.
func (r *Result) Intent() intent.Intent { return r.intent }

// Fallbacks returns the stages whose narrowing was discarded.
func (r *Result) Fallbacks() []Stage { return r.fallbacks }

// FellBack reports whether stage s reverted to its input.
func (r *Result) FellBack(s Stage) bool {
	for _, f := range r.fallbacks {
		if f == s {
			return true
		}
	}
	return false
}
