// Package upload is the file storage service behind image attachments.
// Exactly one backend (local disk or S3) is active, selected by config;
// validation happens before any byte reaches the backend.
package upload

import (
	"context"
	"fmt"

	"github.com/onetree-africa/core/internal/config"
	"github.com/onetree-africa/core/internal/pkg/apperr"
)

// StoredFile describes a successfully stored upload.
type StoredFile struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Storage     string `json:"storage"`
}

// Storage is one concrete upload backend.
type Storage interface {
	Store(ctx context.Context, payload []byte, originalName, contentType string) (*StoredFile, error)
}

// Service validates uploads and delegates to the configured backend.
type Service struct {
	backend  Storage
	maxBytes int64
	allowed  map[string]struct{}
}

// NewService builds the service with the backend named by cfg.Upload.Driver.
func NewService(cfg *config.AppConfig) (*Service, error) {
	var backend Storage
	switch cfg.Upload.Driver {
	case "", "local":
		backend = NewLocalStorage(cfg.Upload.Dir)
	case "s3":
		s3b, err := NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 storage: %w", err)
		}
		backend = s3b
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.Upload.Driver)
	}
	return NewServiceWith(backend, cfg.MaxUploadBytes(), cfg.Upload.AllowedTypes), nil
}

// NewServiceWith wires an explicit backend (used by tests).
func NewServiceWith(backend Storage, maxBytes int64, allowedTypes []string) *Service {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[normalizeContentType(t)] = struct{}{}
	}
	return &Service{backend: backend, maxBytes: maxBytes, allowed: allowed}
}

// Backend exposes the active storage backend so the router can mount the
// local upload directory as static files.
func (s *Service) Backend() Storage { return s.backend }

// Store validates the payload and writes it through the backend.
func (s *Service) Store(ctx context.Context, payload []byte, originalName, declaredType string) (*StoredFile, error) {
	contentType := detectContentType(originalName, payload, declaredType)
	if _, ok := s.allowed[normalizeContentType(contentType)]; !ok {
		return nil, apperr.New(apperr.UnsupportedFileType,
			fmt.Sprintf("unsupported file type %s", contentType))
	}
	if s.maxBytes > 0 && int64(len(payload)) > s.maxBytes {
		return nil, apperr.New(apperr.FileTooLarge,
			fmt.Sprintf("file exceeds %d MiB limit", s.maxBytes/(1024*1024)))
	}
	return s.backend.Store(ctx, payload, originalName, contentType)
}
