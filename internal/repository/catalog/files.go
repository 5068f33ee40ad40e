package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// FileStore reads and writes catalog documents on the local filesystem.
type FileStore struct{}

// NewFileStore creates a filesystem document store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read decodes the document at path. A missing file wraps fs.ErrNotExist.
func (s *FileStore) Read(_ context.Context, path string) (product.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return product.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := product.DecodeDocument(data)
	if err != nil {
		return product.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Write encodes doc and replaces the file at path. The content goes to a
// temporary file in the same directory first, so a watcher never reads a
// half-written catalog.
func (s *FileStore) Write(_ context.Context, path string, doc product.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error wins
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
