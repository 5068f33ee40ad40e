package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/search/request"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
	"github.com/kailas-cloud/vidriera/internal/logger"
)

// Service binds the engine to a catalog provider.
type Service struct {
	catalog  CatalogReader
	engine   *Engine
	recorder Recorder
	maxLimit int
}

// New creates a search service. recorder can be nil. A maxLimit of zero
// disables clamping.
func New(catalog CatalogReader, engine *Engine, recorder Recorder, maxLimit int) *Service {
	return &Service{catalog: catalog, engine: engine, recorder: recorder, maxLimit: maxLimit}
}

// Search runs one query against the current catalog.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Result, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	products, err := s.catalog.Products(ctx)
	if err != nil {
		log.Warn("catalog provider failed", zap.Error(err))
		return result.Result{}, fmt.Errorf("load catalog: %w", err)
	}

	if s.maxLimit > 0 && req.Limit() > s.maxLimit {
		clamped, err := request.New(req.Query(), s.maxLimit)
		if err != nil {
			return result.Result{}, err
		}
		req = &clamped
	}

	res := s.engine.Search(products, req)
	elapsed := time.Since(start)

	in := res.Intent()
	log.Debug("search",
		zap.String("query", req.Query()),
		zap.String("intent", string(in.Kind)),
		zap.Strings("category_hint", in.CategoryHint),
		zap.Int("catalog_size", len(products)),
		zap.Any("fallbacks", res.Fallbacks()),
		zap.Int("returned", len(res.Items())),
		zap.Duration("elapsed", elapsed),
	)

	if s.recorder != nil {
		s.recorder.ObserveSearch(string(in.Kind), len(res.Items()), res.Fallbacks(), elapsed)
	}
	return res, nil
}

// DetectIntent classifies a query without touching the catalog.
func (s *Service) DetectIntent(_ context.Context, query string) (intent.Intent, error) {
	req, err := request.WithDefaultLimit(query)
	if err != nil {
		return intent.Intent{}, err
	}
	return s.engine.DetectIntent(req.Query()), nil
}
