package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/snippet-engine/backend/internal/catalog"
)

// CatalogStorage defines the interface for loading and saving the catalog
type CatalogStorage interface {
	Load() (*catalog.Catalog, error)
	Save(cat *catalog.Catalog) error
	Close() error
}

// FileStorage implements CatalogStorage using a single JSON file
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a file-based catalog storage, creating the parent
// directory when missing
func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{
		path: path,
	}, nil
}

// Load reads the catalog from disk. A missing file yields an empty catalog,
// not an error; the engine runs fine over an empty catalog.
func (fs *FileStorage) Load() (*catalog.Catalog, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.New(nil), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat catalog.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if cat.Version == 0 {
		cat.Version = 1
	}

	return &cat, nil
}

// Save writes the catalog to its JSON file
func (fs *FileStorage) Save(cat *catalog.Catalog) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

// Close is a no-op for file storage
func (fs *FileStorage) Close() error {
	return nil
}
