package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/vidriera/internal/domain"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// CategoryCount is one distinct category path of the catalog.
type CategoryCount struct {
	Path  []string
	Key   string
	Count int
}

// Browser serves product pages and the category list from the live catalog.
type Browser struct {
	src SnapshotReader
}

// NewBrowser creates a Browser.
func NewBrowser(src SnapshotReader) *Browser {
	return &Browser{src: src}
}

// Item returns the detail record for id. A product without a detail record
// gets one built on the fly.
func (b *Browser) Item(ctx context.Context, id string) (product.Detail, error) {
	details, err := b.src.Details(ctx)
	if err != nil {
		return product.Detail{}, fmt.Errorf("load details: %w", err)
	}
	if d, ok := details[id]; ok {
		return d, nil
	}

	products, err := b.src.Products(ctx)
	if err != nil {
		return product.Detail{}, fmt.Errorf("load catalog: %w", err)
	}
	for i := range products {
		if products[i].ID == id {
			return NewDetail(&products[i]), nil
		}
	}
	return product.Detail{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
}

// Categories lists the distinct category paths with product counts, ordered
// by category key. Uncategorized products are not listed.
func (b *Browser) Categories(ctx context.Context) ([]CategoryCount, error) {
	products, err := b.src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byKey := make(map[string]*CategoryCount)
	for i := range products {
		p := &products[i]
		key := CategoryKey(p.CategoryPath)
		if key == NoCategoryKey {
			continue
		}
		if c, ok := byKey[key]; ok {
			c.Count++
			continue
		}
		byKey[key] = &CategoryCount{Path: p.CategoryNames(), Key: key, Count: 1}
	}

	out := make([]CategoryCount, 0, len(byKey))
	for _, c := range byKey {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
