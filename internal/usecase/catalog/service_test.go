package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// --- Mocks ---

type memStore struct {
	docs    map[string]product.Document
	written map[string]product.Document
	readErr error
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]product.Document{}, written: map[string]product.Document{}}
}

func (m *memStore) put(t *testing.T, path, raw string) {
	t.Helper()
	doc, err := product.DecodeDocument([]byte(raw))
	require.NoError(t, err)
	m.docs[path] = doc
}

func (m *memStore) Read(_ context.Context, path string) (product.Document, error) {
	if m.readErr != nil {
		return product.Document{}, m.readErr
	}
	doc, ok := m.docs[path]
	if !ok {
		return product.Document{}, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return doc, nil
}

func (m *memStore) Write(_ context.Context, path string, doc product.Document) error {
	m.written[path] = doc
	return nil
}

type mockPublisher struct {
	key      string
	products []product.Product
	err      error
}

func (m *mockPublisher) Publish(_ context.Context, key string, products []product.Product) error {
	m.key = key
	m.products = products
	return m.err
}

// --- Tests ---

func TestService_MergeDetail_MissingStore(t *testing.T) {
	store := newMemStore()
	store.put(t, "products.json", `{"results":[{"id":"MLA2","title":"b"},{"id":"MLA1","title":"a"}]}`)

	st, err := New(store, nil).MergeDetail(context.Background(), "products.json", "detail.json", MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, st.Added)

	out, ok := store.written["detail.json"]
	require.True(t, ok)
	assert.Equal(t, product.WrapperDetails, out.Wrapper)
	details, err := out.Details()
	require.NoError(t, err)
	assert.Equal(t, "MLA1", details[0].ID)
}

func TestService_MergeDetail_ReadError(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("disk on fire")

	_, err := New(store, nil).MergeDetail(context.Background(), "p.json", "d.json", MergeOptions{})
	assert.ErrorContains(t, err, "disk on fire")
}

func TestService_Sort(t *testing.T) {
	store := newMemStore()
	store.put(t, "in.json", `{"details":[{"id":"2","title":"b"},{"id":"1","title":"a"}]}`)

	rep, err := New(store, nil).Sort(context.Background(), "in.json", "out.json")
	require.NoError(t, err)
	assert.Equal(t, SortReport{Wrapper: product.WrapperDetails, Count: 2}, rep)

	details, err := store.written["out.json"].Details()
	require.NoError(t, err)
	assert.Equal(t, "1", details[0].ID)
}

func TestService_Push(t *testing.T) {
	store := newMemStore()
	store.put(t, "products.json", `[{"id":"1","title":"a"}]`)
	pub := &mockPublisher{}

	n, err := New(store, pub).Push(context.Background(), "products.json", "catalog:main")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "catalog:main", pub.key)
	assert.Len(t, pub.products, 1)
}

func TestService_Push_NoPublisher(t *testing.T) {
	_, err := New(newMemStore(), nil).Push(context.Background(), "p.json", "k")
	assert.Error(t, err)
}

func TestService_Push_PublishError(t *testing.T) {
	store := newMemStore()
	store.put(t, "products.json", `[]`)

	_, err := New(store, &mockPublisher{err: errors.New("redis down")}).Push(context.Background(), "products.json", "k")
	assert.ErrorContains(t, err, "redis down")
}
