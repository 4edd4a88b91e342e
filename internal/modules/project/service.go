package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"github.com/onetree-africa/core/internal/pkg/keylock"
	"github.com/onetree-africa/core/internal/pkg/pagination"
	"github.com/onetree-africa/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct {
	db        *gorm.DB
	uploads   *upload.Service
	maxImages int
	locks     *keylock.KeyLock
}

func NewService(db *gorm.DB, uploads *upload.Service, maxImages int) *Service {
	if maxImages <= 0 {
		maxImages = 3
	}
	return &Service{
		db:        db,
		uploads:   uploads,
		maxImages: maxImages,
		locks:     keylock.New(),
	}
}

// ListPublic returns all projects for the marketing site, most recently
// updated first.
func (s *Service) ListPublic() ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	err := s.db.Order("updated_at DESC").Find(&items).Error
	return items, apperr.Persistence(err)
}

// List returns a paginated admin listing.
func (s *Service) List(q pagination.Query) ([]models.ProjectModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProjectModel{}).Order("updated_at DESC")
	var items []models.ProjectModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, apperr.Persistence(err)
}

func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Project not found")
		}
		return nil, apperr.Persistence(err)
	}
	return &p, nil
}

func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, apperr.New(apperr.ValidationFailed, "name is required")
	}
	if dto.Trees < 0 {
		return nil, apperr.New(apperr.ValidationFailed, "trees must be a non-negative integer")
	}

	var count int64
	if err := s.db.Model(&models.ProjectModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.ValidationFailed, "a project with this name already exists")
	}

	p := models.ProjectModel{
		Name:   name,
		Trees:  dto.Trees,
		Images: models.StringArray{},
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &p, nil
}

// Update merges only the provided fields.
func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, apperr.New(apperr.ValidationFailed, "name must not be empty")
		}
		updates["name"] = name
	}
	if dto.Trees != nil {
		if *dto.Trees < 0 {
			return nil, apperr.New(apperr.ValidationFailed, "trees must be a non-negative integer")
		}
		updates["trees"] = *dto.Trees
	}
	if len(updates) == 0 {
		return p, nil
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return s.GetByID(id)
}

// Delete removes the row for good; a soft-deleted project would still hold
// its unique name hostage.
func (s *Service) Delete(id string) error {
	res := s.db.Unscoped().Delete(&models.ProjectModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Persistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Project not found")
	}
	return nil
}

// AddImage uploads one image and appends its URL to the project, holding a
// per-project lock so the ceiling check and the append are a single step.
func (s *Service) AddImage(ctx context.Context, id string, payload []byte, originalName, contentType string) (*models.ProjectModel, error) {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(p.Images) >= s.maxImages {
		return nil, apperr.New(apperr.ImageLimitExceeded,
			fmt.Sprintf("project already has the maximum of %d images", s.maxImages))
	}

	stored, err := s.uploads.Store(ctx, payload, originalName, contentType)
	if err != nil {
		return nil, err
	}

	images := append(models.StringArray{}, p.Images...)
	images = append(images, stored.URL)
	if err := s.db.Model(p).Update("images", images).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	p.Images = images
	return p, nil
}

// RemoveImageAt drops the image at index, keeping order of the rest. The
// underlying file is not deleted; orphan cleanup is out of band.
func (s *Service) RemoveImageAt(id string, index int) (*models.ProjectModel, error) {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.Images) {
		return nil, apperr.New(apperr.IndexOutOfRange,
			fmt.Sprintf("image index %d is out of range", index))
	}

	images := append(models.StringArray{}, p.Images[:index]...)
	images = append(images, p.Images[index+1:]...)
	if err := s.db.Model(p).Update("images", images).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	p.Images = images
	return p, nil
}
