package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/logger"
)

// SortReport describes a sorted document.
type SortReport struct {
	Wrapper string
	Count   int
}

// Service runs the offline catalog maintenance tasks.
type Service struct {
	docs DocumentStore
	pub  Publisher
}

// New creates a Service. pub can be nil when Push is not used.
func New(docs DocumentStore, pub Publisher) *Service {
	return &Service{docs: docs, pub: pub}
}

// MergeDetail merges the detail store at detailPath with the catalog at
// productsPath and writes it back. A missing detail store starts empty.
func (s *Service) MergeDetail(
	ctx context.Context, productsPath, detailPath string, opts MergeOptions,
) (MergeStats, error) {
	products, err := s.readProducts(ctx, productsPath)
	if err != nil {
		return MergeStats{}, err
	}

	var existing []product.Detail
	doc, err := s.docs.Read(ctx, detailPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return MergeStats{}, fmt.Errorf("read details: %w", err)
	default:
		if existing, err = doc.Details(); err != nil {
			return MergeStats{}, fmt.Errorf("decode details: %w", err)
		}
	}

	merged, stats := Merge(products, existing, opts)

	out, err := product.NewDocument(product.WrapperDetails, merged)
	if err != nil {
		return MergeStats{}, err
	}
	if err := s.docs.Write(ctx, detailPath, out); err != nil {
		return MergeStats{}, fmt.Errorf("write details: %w", err)
	}

	logger.FromContext(ctx).Info("detail store merged",
		zap.String("path", detailPath),
		zap.Int("total", stats.Total),
		zap.Int("added", stats.Added),
		zap.Int("removed", stats.Removed),
		zap.Int("updated", stats.Updated),
	)
	return stats, nil
}

// Sort reorders the records of the document at in by category, then id, and
// writes it to out. in and out may be the same path.
func (s *Service) Sort(ctx context.Context, in, out string) (SortReport, error) {
	doc, err := s.docs.Read(ctx, in)
	if err != nil {
		return SortReport{}, fmt.Errorf("read %s: %w", in, err)
	}
	if err := SortDocument(&doc); err != nil {
		return SortReport{}, err
	}
	if err := s.docs.Write(ctx, out, doc); err != nil {
		return SortReport{}, fmt.Errorf("write %s: %w", out, err)
	}
	return SortReport{Wrapper: doc.Wrapper, Count: len(doc.Records)}, nil
}

// Push uploads the catalog at path under key and returns the product count.
func (s *Service) Push(ctx context.Context, path, key string) (int, error) {
	if s.pub == nil {
		return 0, errors.New("no publisher configured")
	}
	products, err := s.readProducts(ctx, path)
	if err != nil {
		return 0, err
	}
	if err := s.pub.Publish(ctx, key, products); err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}
	logger.FromContext(ctx).Info("catalog pushed", zap.String("key", key), zap.Int("products", len(products)))
	return len(products), nil
}

func (s *Service) readProducts(ctx context.Context, path string) ([]product.Product, error) {
	doc, err := s.docs.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	products, err := doc.Products()
	if err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
