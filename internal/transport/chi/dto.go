package chi

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
	catalogc "github.com/kailas-cloud/vidriera/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/vidriera/internal/usecase/health"
)

type errorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type crumb struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type searchResponse struct {
	Items      []*product.Product `json:"items"`
	Breadcrumb []crumb            `json:"breadcrumb"`
	Intent     intent.Intent      `json:"intent"`
	Fallbacks  []result.Stage     `json:"fallbacks,omitempty"`
}

type categoryItem struct {
	Path  []crumb `json:"path"`
	Slug  string  `json:"slug"`
	Count int     `json:"count"`
}

type categoryListResponse struct {
	Items []categoryItem `json:"items"`
	Total int            `json:"total"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

func searchResponseFrom(res *result.Result) searchResponse {
	items := res.Items()
	if items == nil {
		items = []*product.Product{}
	}
	return searchResponse{
		Items:      items,
		Breadcrumb: crumbsFrom(res.Breadcrumb()),
		Intent:     res.Intent(),
		Fallbacks:  res.Fallbacks(),
	}
}

// crumbsFrom returns nil for an empty path so the breadcrumb encodes as null.
func crumbsFrom(names []string) []crumb {
	if len(names) == 0 {
		return nil
	}
	out := make([]crumb, len(names))
	for i, n := range names {
		out[i] = crumb{Name: n, Slug: slug.Make(n)}
	}
	return out
}

func categoryListFrom(cats []catalogc.CategoryCount) categoryListResponse {
	items := make([]categoryItem, len(cats))
	for i, c := range cats {
		path := crumbsFrom(c.Path)
		slugs := make([]string, len(path))
		for j := range path {
			slugs[j] = path[j].Slug
		}
		items[i] = categoryItem{Path: path, Slug: strings.Join(slugs, "/"), Count: c.Count}
	}
	return categoryListResponse{Items: items, Total: len(items)}
}
