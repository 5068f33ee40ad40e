package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

func TestSnapshot_UnavailableBeforeLoad(t *testing.T) {
	s := NewSnapshot(&stubSource{}, nil)

	if _, err := s.Products(context.Background()); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
	if _, err := s.Details(context.Background()); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
	if err := s.HealthCheck(context.Background()); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected 0, got %d", s.Len())
	}
}

func TestSnapshot_Reload(t *testing.T) {
	src := &stubSource{
		products: []product.Product{{ID: "MLA1"}, {ID: "MLA2"}},
		details:  []product.Detail{{ID: "MLA2", SoldQuantity: 7}},
	}
	obs := &recordingObserver{}
	s := NewSnapshot(src, obs)

	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	products, err := s.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
	details, err := s.Details(context.Background())
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details["MLA2"].SoldQuantity != 7 {
		t.Errorf("expected detail for MLA2, got %+v", details)
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("expected healthy, got %v", err)
	}
	if len(obs.counts) != 1 || obs.counts[0] != 2 || obs.errs[0] != nil {
		t.Errorf("unexpected observations: %+v %+v", obs.counts, obs.errs)
	}
}

func TestSnapshot_FailedReloadKeepsPrevious(t *testing.T) {
	src := &stubSource{products: []product.Product{{ID: "MLA1"}}}
	obs := &recordingObserver{}
	s := NewSnapshot(src, obs)

	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	boom := errors.New("disk on fire")
	src.err = boom
	if err := s.Reload(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected previous snapshot kept, got %d products", s.Len())
	}
	if len(obs.errs) != 2 || !errors.Is(obs.errs[1], boom) {
		t.Errorf("expected failure observed, got %+v", obs.errs)
	}
}

func TestSnapshot_ConcurrentReaders(t *testing.T) {
	src := &stubSource{products: []product.Product{{ID: "MLA1"}, {ID: "MLA2"}, {ID: "MLA3"}}}
	s := NewSnapshot(src, nil)
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				products, err := s.Products(context.Background())
				if err != nil || len(products) != 3 {
					t.Errorf("unexpected read: %d %v", len(products), err)
					return
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		if err := s.Reload(context.Background()); err != nil {
			t.Errorf("reload: %v", err)
		}
	}
	wg.Wait()
}
