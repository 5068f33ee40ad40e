package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
)

// CatalogReader provides the current immutable catalog.
type CatalogReader interface {
	Products(ctx context.Context) ([]product.Product, error)
}

// Recorder receives per-search measurements.
type Recorder interface {
	ObserveSearch(kind string, returned int, fallbacks []result.Stage, elapsed time.Duration)
}
