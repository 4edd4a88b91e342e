package news

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

// ListPublic returns all news items for the home page, newest first.
func (s *Service) ListPublic() ([]models.NewsModel, error) {
	var items []models.NewsModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, apperr.Persistence(err)
}

// List returns a paginated admin listing.
func (s *Service) List(q pagination.Query) ([]models.NewsModel, response.Pagination, error) {
	tx := s.db.Model(&models.NewsModel{}).Order("created_at DESC")
	var items []models.NewsModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, apperr.Persistence(err)
}

func (s *Service) GetByID(id string) (*models.NewsModel, error) {
	var n models.NewsModel
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "News item not found")
		}
		return nil, apperr.Persistence(err)
	}
	return &n, nil
}

// Create validates all required fields, stores the image, then persists.
// The image is mandatory at creation.
func (s *Service) Create(ctx context.Context, dto *CreateNewsDTO, file *upload.Incoming) (*models.NewsModel, error) {
	title := strings.TrimSpace(dto.Title)
	excerpt := strings.TrimSpace(dto.Excerpt)
	link := strings.TrimSpace(dto.Link)
	if title == "" || excerpt == "" || link == "" {
		return nil, apperr.New(apperr.ValidationFailed, "title, excerpt and link are required")
	}
	if file == nil {
		return nil, apperr.New(apperr.ValidationFailed, "image is required")
	}

	stored, err := s.uploads.Store(ctx, file.Payload, file.Name, file.ContentType)
	if err != nil {
		return nil, err
	}

	color := strings.TrimSpace(dto.Color)
	if color == "" {
		color = models.DefaultNewsColor
	}

	n := models.NewsModel{
		Title:   title,
		Excerpt: excerpt,
		Link:    link,
		Image:   stored.URL,
		Color:   color,
	}
	if err := s.db.Create(&n).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &n, nil
}

// Update merges only the provided fields. A new file replaces the stored
// image URL; without one, the existing value is preserved.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateNewsDTO, file *upload.Incoming) (*models.NewsModel, error) {
	n, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, apperr.New(apperr.ValidationFailed, "title must not be empty")
		}
		updates["title"] = strings.TrimSpace(*dto.Title)
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = strings.TrimSpace(*dto.Excerpt)
	}
	if dto.Link != nil {
		updates["link"] = strings.TrimSpace(*dto.Link)
	}
	if dto.Color != nil {
		updates["color"] = strings.TrimSpace(*dto.Color)
	}

	if file != nil {
		stored, err := s.uploads.Store(ctx, file.Payload, file.Name, file.ContentType)
		if err != nil {
			return nil, err
		}
		updates["image"] = stored.URL
	}

	if len(updates) == 0 {
		return n, nil
	}
	if err := s.db.Model(n).Updates(updates).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) error {
	res := s.db.Unscoped().Delete(&models.NewsModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Persistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "News item not found")
	}
	return nil
}
