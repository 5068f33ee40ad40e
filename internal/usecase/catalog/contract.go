package catalog

import (
	"context"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// DocumentStore reads and writes catalog documents. Read wraps
// fs.ErrNotExist for a missing document.
type DocumentStore interface {
	Read(ctx context.Context, path string) (product.Document, error)
	Write(ctx context.Context, path string, doc product.Document) error
}

// Publisher uploads a catalog under a key.
type Publisher interface {
	Publish(ctx context.Context, key string, products []product.Product) error
}

// SnapshotReader exposes the live catalog and detail store.
type SnapshotReader interface {
	Products(ctx context.Context) ([]product.Product, error)
	Details(ctx context.Context) (map[string]product.Detail, error)
}
