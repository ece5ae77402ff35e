package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore is the boundary to the external blob storage collaborator that
// keeps uploaded images. The application only forwards bytes through it.
type BlobStore interface {
	// Save stores the blob and returns the path it can later be served from.
	Save(name string, data []byte) (string, error)
}

// DiskStore is a BlobStore writing into a local media directory
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob under a unique name, keeping the original extension
func (s *DiskStore) Save(name string, data []byte) (string, error) {
	fileName := uuid.NewString() + filepath.Ext(name)
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return path, nil
}
