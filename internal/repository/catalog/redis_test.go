package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/vidriera/internal/db"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

func TestRedisSource_Load(t *testing.T) {
	var gotKey string
	s := &mockStore{
		jsonGetFn: func(_ context.Context, key string, _ ...string) ([]byte, error) {
			gotKey = key
			return []byte(`{"results":[{"id":"MLA1","title":"Tablet Samsung"}]}`), nil
		},
	}

	products, details, err := NewRedisSource(s, "catalog:products").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "catalog:products" {
		t.Errorf("expected key catalog:products, got %s", gotKey)
	}
	if len(products) != 1 || products[0].ID != "MLA1" {
		t.Errorf("unexpected products: %+v", products)
	}
	if details != nil {
		t.Errorf("expected nil details, got %+v", details)
	}
}

func TestRedisSource_LoadFallsBackToGet(t *testing.T) {
	getCalled := false
	s := &mockStore{
		jsonGetFn: func(context.Context, string, ...string) ([]byte, error) {
			return nil, &db.Error{Op: db.OpJSONGet, Err: db.ErrUnsupported}
		},
		getFn: func(context.Context, string) ([]byte, error) {
			getCalled = true
			return []byte(`[{"id":"MLA9","title":"Parlante JBL"}]`), nil
		},
	}

	products, _, err := NewRedisSource(s, "k").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !getCalled {
		t.Error("expected GET fallback")
	}
	if len(products) != 1 || products[0].ID != "MLA9" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestRedisSource_LoadNotFound(t *testing.T) {
	s := &mockStore{
		jsonGetFn: func(context.Context, string, ...string) ([]byte, error) {
			return nil, db.ErrKeyNotFound
		},
	}
	_, _, err := NewRedisSource(s, "k").Load(context.Background())
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestRedisSource_LoadBadDocument(t *testing.T) {
	s := &mockStore{
		jsonGetFn: func(context.Context, string, ...string) ([]byte, error) {
			return []byte(`"hello"`), nil
		},
	}
	if _, _, err := NewRedisSource(s, "k").Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRedisSource_Publish(t *testing.T) {
	var gotKey, gotPath, gotData string
	s := &mockStore{
		jsonSetFn: func(_ context.Context, key, path string, data []byte) error {
			gotKey, gotPath, gotData = key, path, string(data)
			return nil
		},
	}

	err := NewRedisSource(s, "unused").Publish(context.Background(), "catalog:v2", []product.Product{
		{ID: "MLA1", Title: "Camioneta Toyota Hilux"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "catalog:v2" || gotPath != "$" {
		t.Errorf("unexpected key/path: %s %s", gotKey, gotPath)
	}
	if !strings.Contains(gotData, `"results"`) || !strings.Contains(gotData, "Hilux") {
		t.Errorf("unexpected payload: %s", gotData)
	}
}

func TestRedisSource_PublishFallsBackToSet(t *testing.T) {
	setCalled := false
	s := &mockStore{
		jsonSetFn: func(context.Context, string, string, []byte) error {
			return &db.Error{Op: db.OpJSONSet, Err: db.ErrUnsupported}
		},
		setFn: func(_ context.Context, key string, _ []byte) error {
			setCalled = key == "catalog"
			return nil
		},
	}

	if err := NewRedisSource(s, "catalog").Publish(context.Background(), "catalog", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !setCalled {
		t.Error("expected SET fallback")
	}
}

func TestRedisSource_PublishError(t *testing.T) {
	s := &mockStore{
		jsonSetFn: func(context.Context, string, string, []byte) error {
			return &db.Error{Op: db.OpJSONSet, Err: context.DeadlineExceeded}
		},
	}
	err := NewRedisSource(s, "catalog").Publish(context.Background(), "catalog", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}
