package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/vidriera/internal/db"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// store is the consumer interface for Redis-backed catalogs (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RedisSource reads a catalog document stored under a key, and publishes
// one. Servers without the JSON module fall back to plain strings.
type RedisSource struct {
	store store
	key   string
}

// NewRedisSource creates a source reading key.
func NewRedisSource(s store, key string) *RedisSource {
	return &RedisSource{store: s, key: key}
}

// Load implements Source.
func (r *RedisSource) Load(ctx context.Context) ([]product.Product, []product.Detail, error) {
	raw, err := r.store.JSONGet(ctx, r.key)
	if errors.Is(err, db.ErrUnsupported) {
		raw, err = r.store.Get(ctx, r.key)
	}
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil, fmt.Errorf("catalog key %s: %w", r.key, err)
		}
		return nil, nil, fmt.Errorf("load %s: %w", r.key, err)
	}

	doc, err := product.DecodeDocument(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog key %s: %w", r.key, err)
	}
	products, err := doc.Products()
	if err != nil {
		return nil, nil, fmt.Errorf("catalog key %s: %w", r.key, err)
	}
	return products, nil, nil
}

// Publish stores products under key as a {results:[...]} document.
func (r *RedisSource) Publish(ctx context.Context, key string, products []product.Product) error {
	doc, err := product.NewDocument(product.WrapperResults, products)
	if err != nil {
		return err
	}
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	err = r.store.JSONSet(ctx, key, "$", data)
	if errors.Is(err, db.ErrUnsupported) {
		err = r.store.Set(ctx, key, data)
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}
