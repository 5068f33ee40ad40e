package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kailas-cloud/vidriera/internal/domain"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// ReloadObserver receives the outcome of every reload attempt.
type ReloadObserver interface {
	ObserveCatalogReload(products int, err error)
}

type state struct {
	products []product.Product
	details  map[string]product.Detail
}

// Snapshot holds an immutable catalog behind an atomic pointer. Readers
// always see a complete catalog; a failed reload keeps the previous one.
type Snapshot struct {
	src      Source
	observer ReloadObserver

	cur atomic.Pointer[state]
	mu  sync.Mutex // serializes reloads
}

// NewSnapshot creates an empty snapshot over src. observer may be nil.
func NewSnapshot(src Source, observer ReloadObserver) *Snapshot {
	return &Snapshot{src: src, observer: observer}
}

// Reload loads the source and swaps the snapshot in.
func (s *Snapshot) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, details, err := s.src.Load(ctx)
	if err != nil {
		s.observe(0, err)
		return fmt.Errorf("reload catalog: %w", err)
	}

	byID := make(map[string]product.Detail, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}
	s.cur.Store(&state{products: products, details: byID})
	s.observe(len(products), nil)
	return nil
}

// Products returns the current catalog. Callers must not modify it.
func (s *Snapshot) Products(_ context.Context) ([]product.Product, error) {
	st := s.cur.Load()
	if st == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return st.products, nil
}

// Details returns the detail records keyed by product id.
func (s *Snapshot) Details(_ context.Context) (map[string]product.Detail, error) {
	st := s.cur.Load()
	if st == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return st.details, nil
}

// HealthCheck reports whether a catalog has been loaded.
func (s *Snapshot) HealthCheck(_ context.Context) error {
	if s.cur.Load() == nil {
		return domain.ErrCatalogUnavailable
	}
	return nil
}

// Len returns the number of products, 0 before the first load.
func (s *Snapshot) Len() int {
	st := s.cur.Load()
	if st == nil {
		return 0
	}
	return len(st.products)
}

func (s *Snapshot) observe(n int, err error) {
	if s.observer != nil {
		s.observer.ObserveCatalogReload(n, err)
	}
}
