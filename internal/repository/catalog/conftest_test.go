package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	getFn     func(ctx context.Context, key string) ([]byte, error)
	setFn     func(ctx context.Context, key string, value []byte) error
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return []byte("[]"), nil
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return []byte("[]"), nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

// stubSource returns fixed results, counting calls.
type stubSource struct {
	products []product.Product
	details  []product.Detail
	err      error
	calls    int
}

func (s *stubSource) Load(_ context.Context) ([]product.Product, []product.Detail, error) {
	s.calls++
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.products, s.details, nil
}

// recordingObserver records reload outcomes. Safe for the watcher goroutine.
type recordingObserver struct {
	mu     sync.Mutex
	counts []int
	errs   []error
}

func (o *recordingObserver) ObserveCatalogReload(n int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts = append(o.counts, n)
	o.errs = append(o.errs, err)
}

func (o *recordingObserver) failures() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, err := range o.errs {
		if err != nil {
			n++
		}
	}
	return n
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
