package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DocumentRepository stores uploaded PDFs on the local filesystem.
type DocumentRepository struct {
	dir string
}

// NewDocumentRepository creates a DocumentRepository rooted at dir,
// creating the directory if needed.
func NewDocumentRepository(dir string) (*DocumentRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pdf dir: %w", err)
	}
	return &DocumentRepository{dir: dir}, nil
}

// Dir returns the storage directory, for static file serving.
func (r *DocumentRepository) Dir() string {
	return r.dir
}

// Path returns the on-disk path of a stored document.
func (r *DocumentRepository) Path(name string) string {
	return filepath.Join(r.dir, filepath.Base(name))
}

// Exists reports whether a stored document with the given name exists.
func (r *DocumentRepository) Exists(name string) bool {
	info, err := os.Stat(r.Path(name))
	return err == nil && !info.IsDir()
}

// Save writes an uploaded PDF under the given name and returns its size.
func (r *DocumentRepository) Save(name string, src io.Reader) (int64, error) {
	dst, err := os.Create(r.Path(name))
	if err != nil {
		return 0, fmt.Errorf("create pdf: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	return n, nil
}

// Open opens a stored document for reading.
func (r *DocumentRepository) Open(name string) (*os.File, error) {
	f, err := os.Open(r.Path(name))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return f, nil
}

// StoredDocument is a directory listing entry.
type StoredDocument struct {
	Name string
	Size int64
}

// List returns the stored PDFs sorted by the directory's natural order.
func (r *DocumentRepository) List() ([]StoredDocument, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read pdf dir: %w", err)
	}

	var docs []StoredDocument
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		docs = append(docs, StoredDocument{Name: e.Name(), Size: info.Size()})
	}
	return docs, nil
}
