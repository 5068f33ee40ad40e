package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// Source loads a full catalog. Details may be nil when the source has no
// detail store.
type Source interface {
	Load(ctx context.Context) (products []product.Product, details []product.Detail, err error)
}

// FileSource reads the catalog from a JSON file and, optionally, the detail
// store from a second one.
type FileSource struct {
	store      *FileStore
	path       string
	detailPath string
}

// NewFileSource creates a file-backed source. detailPath may be empty.
func NewFileSource(path, detailPath string) *FileSource {
	return &FileSource{store: NewFileStore(), path: path, detailPath: detailPath}
}

// Paths returns the files this source reads, for watching.
func (s *FileSource) Paths() []string {
	if s.detailPath == "" {
		return []string{s.path}
	}
	return []string{s.path, s.detailPath}
}

// Load implements Source. A missing detail file is not an error.
func (s *FileSource) Load(ctx context.Context) ([]product.Product, []product.Detail, error) {
	doc, err := s.store.Read(ctx, s.path)
	if err != nil {
		return nil, nil, err
	}
	products, err := doc.Products()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.path, err)
	}
	if s.detailPath == "" {
		return products, nil, nil
	}

	ddoc, err := s.store.Read(ctx, s.detailPath)
	if errors.Is(err, fs.ErrNotExist) {
		return products, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	details, err := ddoc.Details()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.detailPath, err)
	}
	return products, details, nil
}
