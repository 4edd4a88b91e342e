package gallery

import (
	"context"
	"errors"
	"strings"

	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/onetree-africa/core/internal/pkg/pagination"
	"github.com/onetree-africa/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	uploads *upload.Service
}

func NewService(db *gorm.DB, uploads *upload.Service) *Service {
	return &Service{db: db, uploads: uploads}
}

// ListPublic returns every gallery image for the gallery page, newest first.
func (s *Service) ListPublic() ([]models.GalleryModel, error) {
	var items []models.GalleryModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, apperr.Persistence(err)
}

// List returns a paginated admin listing.
func (s *Service) List(q pagination.Query) ([]models.GalleryModel, response.Pagination, error) {
	tx := s.db.Model(&models.GalleryModel{}).Order("created_at DESC")
	var items []models.GalleryModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, apperr.Persistence(err)
}

func (s *Service) GetByID(id string) (*models.GalleryModel, error) {
	var g models.GalleryModel
	if err := s.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Gallery image not found")
		}
		return nil, apperr.Persistence(err)
	}
	return &g, nil
}

// Create stores the image file and persists a record pointing at it. Alt
// text, caption and the file itself are all required.
func (s *Service) Create(ctx context.Context, dto *CreateGalleryDTO, file *upload.Incoming) (*models.GalleryModel, error) {
	alt := strings.TrimSpace(dto.Alt)
	caption := strings.TrimSpace(dto.Caption)
	if alt == "" || caption == "" {
		return nil, apperr.New(apperr.ValidationFailed, "alt and caption are required")
	}
	if file == nil {
		return nil, apperr.New(apperr.ValidationFailed, "image is required")
	}

	stored, err := s.uploads.Store(ctx, file.Payload, file.Name, file.ContentType)
	if err != nil {
		return nil, err
	}

	g := models.GalleryModel{
		Src:     stored.URL,
		Alt:     alt,
		Caption: caption,
	}
	if err := s.db.Create(&g).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &g, nil
}

// Update merges the provided fields. Src only changes when a new file is
// uploaded; metadata edits never touch the stored image.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateGalleryDTO, file *upload.Incoming) (*models.GalleryModel, error) {
	g, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Alt != nil {
		updates["alt"] = strings.TrimSpace(*dto.Alt)
	}
	if dto.Caption != nil {
		updates["caption"] = strings.TrimSpace(*dto.Caption)
	}

	if file != nil {
		stored, err := s.uploads.Store(ctx, file.Payload, file.Name, file.ContentType)
		if err != nil {
			return nil, err
		}
		updates["src"] = stored.URL
	}

	if len(updates) == 0 {
		return g, nil
	}
	if err := s.db.Model(g).Updates(updates).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) error {
	res := s.db.Unscoped().Delete(&models.GalleryModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Persistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Gallery image not found")
	}
	return nil
}
