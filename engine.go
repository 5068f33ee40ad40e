// Package vidriera is an embeddable product-catalog search engine: intent
// detection, fail-open category and attribute narrowing, and ranking over an
// in-memory catalog snapshot.
package vidriera

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/vidriera/internal/db"
	dbRedis "github.com/kailas-cloud/vidriera/internal/db/redis"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	catalogrepo "github.com/kailas-cloud/vidriera/internal/repository/catalog"
	searchuc "github.com/kailas-cloud/vidriera/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Catalog record types.
type (
	Product  = product.Product
	Category = product.Category
	Address  = product.Address
	Shipping = product.Shipping
)

// Intent is the classification of a query.
type Intent = intent.Intent

// IntentKind tags the product domain of a query.
type IntentKind = intent.Kind

// Engine is the vidriera entry point.
type Engine struct {
	store   db.Store
	snap    *catalogrepo.Snapshot
	engine  *searchuc.Engine
	svc     *searchuc.Service
	watcher *catalogrepo.Watcher
	cancel  context.CancelFunc
}

// New creates an Engine and loads the catalog once. Exactly one catalog
// option (WithProducts, WithCatalogFile or WithRedis) is required.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{engine: searchuc.NewEngine(searchuc.NewDetector())}

	src, err := e.source(cfg)
	if err != nil {
		return nil, err
	}

	e.snap = catalogrepo.NewSnapshot(src, nil)
	if err := e.snap.Reload(context.Background()); err != nil {
		e.Close()
		return nil, fmt.Errorf("vidriera: %w", err)
	}
	e.svc = searchuc.New(e.snap, e.engine, nil, cfg.maxLimit)

	if cfg.watch {
		fs, ok := src.(*catalogrepo.FileSource)
		if !ok {
			e.Close()
			return nil, errors.New("vidriera: WithWatch requires WithCatalogFile")
		}
		w, err := catalogrepo.NewWatcher(e.snap, fs.Paths(), cfg.debounce, nil)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("vidriera: %w", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		e.watcher, e.cancel = w, cancel
		go w.Run(ctx)
	}
	return e, nil
}

func (e *Engine) source(cfg *engineConfig) (catalogrepo.Source, error) {
	switch {
	case cfg.products != nil:
		return staticSource(cfg.products), nil
	case cfg.path != "":
		return catalogrepo.NewFileSource(cfg.path, cfg.detailPath), nil
	default:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("vidriera: create redis store: %w", err)
		}
		if err := s.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("vidriera: database not ready: %w", err)
		}
		e.store = s
		return catalogrepo.NewRedisSource(s, cfg.key), nil
	}
}

// Close stops the file watcher and releases the database connection.
func (e *Engine) Close() {
	if e.cancel != nil {
		e.cancel()
	}
	if e.watcher != nil {
		_ = e.watcher.Stop()
	}
	if e.store != nil {
		e.store.Close()
	}
}

// Reload re-reads the catalog source. On failure the previous catalog
// stays in place.
func (e *Engine) Reload(ctx context.Context) error {
	if err := e.snap.Reload(ctx); err != nil {
		return fmt.Errorf("vidriera: %w", err)
	}
	return nil
}

// Len returns the number of products in the loaded catalog.
func (e *Engine) Len() int {
	return e.snap.Len()
}

// staticSource serves a fixed product slice.
type staticSource []product.Product

func (s staticSource) Load(context.Context) ([]product.Product, []product.Detail, error) {
	return s, nil, nil
}
