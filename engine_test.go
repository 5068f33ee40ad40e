package vidriera

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func item(id, title string, cats ...string) Product {
	p := Product{ID: id, Title: title}
	for _, c := range cats {
		p.CategoryPath = append(p.CategoryPath, Category{Name: c})
	}
	return p
}

func catalog() []Product {
	return []Product{
		item("1", "Yamaha FZ 150", "Vehiculos", "Motos"),
		item("2", "Honda CB500", "Vehiculos", "Motos"),
		item("3", "Apple iPhone 13 Pro 256GB", "Tecnologia", "Celulares"),
		item("4", "iPhone 13 128GB", "Tecnologia", "Celulares"),
		item("5", "Notebook Lenovo IdeaPad 16GB 512GB SSD", "Tecnologia", "Notebooks"),
		item("6", "Notebook Lenovo IdeaPad 8GB 256GB", "Tecnologia", "Notebooks"),
	}
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestNew_SourceValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"no source", nil, "catalog source required"},
		{"two sources", []Option{WithProducts(catalog()), WithCatalogFile("x.json")}, "only one catalog source"},
		{"redis without addr", []Option{WithRedis("catalog")}, "needs a key"},
		{"watch without file", []Option{WithProducts(catalog()), WithWatch(0)}, "requires WithCatalogFile"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %q", tc.want, err)
			}
		})
	}
}

func TestEngine_Search(t *testing.T) {
	e := newEngine(t, WithProducts(catalog()))

	res, err := e.Search(context.Background(), "iphone 13 pro 256gb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent.Kind != "phone" {
		t.Errorf("expected phone intent, got %s", res.Intent.Kind)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "3" {
		t.Errorf("expected only product 3, got %+v", res.Items)
	}
	if len(res.Breadcrumb) != 2 || res.Breadcrumb[1] != "Celulares" {
		t.Errorf("unexpected breadcrumb: %v", res.Breadcrumb)
	}
}

func TestEngine_SearchLimit(t *testing.T) {
	e := newEngine(t, WithProducts(catalog()), WithMaxLimit(5))

	res, err := e.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != DefaultLimit {
		t.Errorf("expected %d items, got %d", DefaultLimit, len(res.Items))
	}

	res, err = e.Search(context.Background(), "", Limit(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 5 {
		t.Errorf("expected clamp to 5, got %d", len(res.Items))
	}

	_, err = e.Search(context.Background(), "moto", Limit(-1))
	if !IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestEngine_SearchNoResults(t *testing.T) {
	e := newEngine(t, WithProducts(catalog()))

	res, err := e.Search(context.Background(), "xyz123")
	if err != nil {
		t.Fatalf("no results must not be an error: %v", err)
	}
	if len(res.Items) != 0 {
		t.Errorf("expected no items, got %d", len(res.Items))
	}
	if res.Breadcrumb != nil {
		t.Errorf("expected no breadcrumb, got %v", res.Breadcrumb)
	}
}

func TestEngine_DetectIntent(t *testing.T) {
	e := newEngine(t, WithProducts(nil))

	in, err := e.DetectIntent("notebook lenovo 16gb 512gb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != "notebook" || in.Brand != "lenovo" {
		t.Errorf("unexpected intent: %+v", in)
	}

	if _, err := e.DetectIntent(strings.Repeat("a", 4097)); !IsInvalidInput(err) {
		t.Errorf("expected invalid input for long query, got %v", err)
	}
}

func TestEngine_CatalogFileAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`{"results":[{"id":"1","title":"Honda CB500"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e := newEngine(t, WithCatalogFile(path))
	if e.Len() != 1 {
		t.Fatalf("expected 1 product, got %d", e.Len())
	}

	if err := os.WriteFile(path, []byte(`[{"id":"1"},{"id":"2"}]`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := e.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if e.Len() != 2 {
		t.Errorf("expected 2 products, got %d", e.Len())
	}

	if err := os.WriteFile(path, []byte(`oops`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := e.Reload(context.Background()); err == nil {
		t.Error("expected reload error")
	}
	if e.Len() != 2 {
		t.Errorf("expected previous catalog kept, got %d", e.Len())
	}
}

func TestEngine_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`[{"id":"1"}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e := newEngine(t, WithCatalogFile(path), WithWatch(20*time.Millisecond))
	if err := os.WriteFile(path, []byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for e.Len() != 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected watcher reload, still %d products", e.Len())
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := New(WithCatalogFile(filepath.Join(t.TempDir(), "missing.json"))); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
