package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/vidriera/internal/domain"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/search/request"
	"github.com/kailas-cloud/vidriera/internal/domain/search/result"
)

// --- Mocks ---

type mockCatalog struct {
	products []product.Product
	err      error
	calls    int
}

func (m *mockCatalog) Products(_ context.Context) ([]product.Product, error) {
	m.calls++
	return m.products, m.err
}

type observation struct {
	kind      string
	returned  int
	fallbacks []result.Stage
}

type mockRecorder struct {
	seen []observation
}

func (m *mockRecorder) ObserveSearch(kind string, returned int, fallbacks []result.Stage, _ time.Duration) {
	m.seen = append(m.seen, observation{kind: kind, returned: returned, fallbacks: fallbacks})
}

func makeRequest(t *testing.T, q string, limit int) *request.Request {
	t.Helper()
	r, err := request.New(q, limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

// --- Tests ---

func TestService_Search(t *testing.T) {
	cat := &mockCatalog{products: fixtureCatalog()}
	rec := &mockRecorder{}
	svc := New(cat, newTestEngine(), rec, 50)

	res, err := svc.Search(context.Background(), makeRequest(t, "moto honda", 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items()) != 1 || res.Items()[0].ID != "2" {
		t.Errorf("expected [2], got %v", ids(res.Items()))
	}
	if cat.calls != 1 {
		t.Errorf("expected 1 catalog call, got %d", cat.calls)
	}
	if len(rec.seen) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(rec.seen))
	}
	if rec.seen[0].kind != "moto" || rec.seen[0].returned != 1 {
		t.Errorf("unexpected observation %+v", rec.seen[0])
	}
}

func TestService_Search_CatalogError(t *testing.T) {
	cat := &mockCatalog{err: domain.ErrCatalogUnavailable}
	rec := &mockRecorder{}
	svc := New(cat, newTestEngine(), rec, 50)

	_, err := svc.Search(context.Background(), makeRequest(t, "tv", 4))
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
	if len(rec.seen) != 0 {
		t.Errorf("expected no observation on error, got %d", len(rec.seen))
	}
}

func TestService_Search_ClampsLimit(t *testing.T) {
	svc := New(&mockCatalog{products: fixtureCatalog()}, newTestEngine(), nil, 2)

	res, err := svc.Search(context.Background(), makeRequest(t, "", 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items()) != 2 {
		t.Errorf("expected 2 items, got %d", len(res.Items()))
	}
}

func TestService_Search_NoClampWhenDisabled(t *testing.T) {
	svc := New(&mockCatalog{products: fixtureCatalog()}, newTestEngine(), nil, 0)

	res, err := svc.Search(context.Background(), makeRequest(t, "", 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items()) != len(fixtureCatalog()) {
		t.Errorf("expected %d items, got %d", len(fixtureCatalog()), len(res.Items()))
	}
}

func TestService_DetectIntent(t *testing.T) {
	cat := &mockCatalog{}
	svc := New(cat, newTestEngine(), nil, 50)

	in, err := svc.DetectIntent(context.Background(), "remera manga corta hombre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != intent.TShirt {
		t.Errorf("expected remera, got %q", in.Kind)
	}
	if cat.calls != 0 {
		t.Errorf("DetectIntent must not read the catalog, got %d calls", cat.calls)
	}
}

func TestService_DetectIntent_InvalidInput(t *testing.T) {
	svc := New(&mockCatalog{}, newTestEngine(), nil, 50)

	_, err := svc.DetectIntent(context.Background(), "\xff\xfe")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
