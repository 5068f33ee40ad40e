package vidriera

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/vidriera/internal/domain"
	"github.com/kailas-cloud/vidriera/internal/domain/search/request"
)

// DefaultLimit is the number of items returned when no limit is given.
const DefaultLimit = request.DefaultLimit

// SearchOptions configures a search.
type SearchOptions struct {
	// Limit bounds the result; nil means DefaultLimit.
	Limit *int
}

// Limit returns SearchOptions with the given limit.
func Limit(n int) SearchOptions {
	return SearchOptions{Limit: &n}
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	Items      []Product `json:"items"`
	Breadcrumb []string  `json:"breadcrumb"`
	Intent     Intent    `json:"intent"`
	// Fallbacks lists the narrowing stages that reverted to the wider pool.
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// Search runs query against the loaded catalog. A query that is not valid
// UTF-8, longer than 4096 bytes, or a negative limit is rejected; an empty
// result is not an error.
func (e *Engine) Search(ctx context.Context, query string, opts ...SearchOptions) (SearchResult, error) {
	limit := DefaultLimit
	for _, o := range opts {
		if o.Limit != nil {
			limit = *o.Limit
		}
	}

	req, err := request.New(query, limit)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}

	res, err := e.svc.Search(ctx, &req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}

	items := make([]Product, len(res.Items()))
	for i, p := range res.Items() {
		items[i] = *p
	}
	fallbacks := make([]string, len(res.Fallbacks()))
	for i, st := range res.Fallbacks() {
		fallbacks[i] = string(st)
	}
	return SearchResult{
		Items:      items,
		Breadcrumb: res.Breadcrumb(),
		Intent:     res.Intent(),
		Fallbacks:  fallbacks,
	}, nil
}

// DetectIntent classifies a query without touching the catalog.
func (e *Engine) DetectIntent(query string) (Intent, error) {
	req, err := request.WithDefaultLimit(query)
	if err != nil {
		return Intent{}, fmt.Errorf("detect intent: %w", err)
	}
	return e.engine.DetectIntent(req.Query()), nil
}

// IsInvalidInput reports whether err was caused by a rejected query or limit.
func IsInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput)
}
