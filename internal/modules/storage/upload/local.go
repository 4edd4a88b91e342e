package upload

import (
	"context"
	"os"
	"path/filepath"

	"github.com/onetree-africa/core/internal/pkg/apperr"
)

// PublicPrefix is the URL prefix the router serves the upload directory under.
const PublicPrefix = "/uploads"

// LocalStorage writes uploads to a directory served as static files.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Dir returns the storage directory (the router mounts it at PublicPrefix).
func (l *LocalStorage) Dir() string { return l.dir }

func (l *LocalStorage) Store(ctx context.Context, payload []byte, originalName, contentType string) (*StoredFile, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.StorageWriteFailed, "failed to create upload directory", err)
	}

	name := buildFileName(originalName)
	if err := os.WriteFile(filepath.Join(l.dir, name), payload, 0o644); err != nil {
		return nil, apperr.Wrap(apperr.StorageWriteFailed, "failed to save file", err)
	}

	return &StoredFile{
		URL:         PublicPrefix + "/" + name,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(payload)),
		Storage:     "local",
	}, nil
}
