// Package seed loads the initial site content into an empty database.
// Running it repeatedly is safe: existing rows are skipped, never duplicated
// or overwritten.
package seed

import (
	"errors"

	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Counts reports what a seeding pass did for one collection.
type Counts struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Result aggregates the per-collection outcome of a seeding pass.
type Result struct {
	Projects Counts `json:"projects"`
	News     Counts `json:"news"`
	Gallery  Counts `json:"gallery"`
}

// Changed reports whether the pass inserted anything.
func (r Result) Changed() bool {
	return r.Projects.Added+r.News.Added+r.Gallery.Added > 0
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Run seeds all three collections and returns the per-collection counts.
func (s *Service) Run() (Result, error) {
	var res Result
	var err error

	if res.Projects, err = s.seedProjects(); err != nil {
		return res, err
	}
	if res.News, err = s.seedNews(); err != nil {
		return res, err
	}
	if res.Gallery, err = s.seedGallery(); err != nil {
		return res, err
	}
	return res, nil
}

func (s *Service) seedProjects() (Counts, error) {
	var counts Counts
	for i := range seedProjects {
		exists, err := s.rowExists(&models.ProjectModel{}, "name = ?", seedProjects[i].Name)
		if err != nil {
			return counts, err
		}
		if exists {
			counts.Skipped++
			continue
		}
		row := seedProjects[i]
		if err := s.db.Create(&row).Error; err != nil {
			return counts, apperr.Persistence(err)
		}
		counts.Added++
	}
	return counts, nil
}

func (s *Service) seedNews() (Counts, error) {
	var counts Counts
	for i := range seedNews {
		exists, err := s.rowExists(&models.NewsModel{}, "title = ?", seedNews[i].Title)
		if err != nil {
			return counts, err
		}
		if exists {
			counts.Skipped++
			continue
		}
		row := seedNews[i]
		if err := s.db.Create(&row).Error; err != nil {
			return counts, apperr.Persistence(err)
		}
		counts.Added++
	}
	return counts, nil
}

func (s *Service) seedGallery() (Counts, error) {
	var counts Counts
	for i := range seedGallery {
		exists, err := s.rowExists(&models.GalleryModel{}, "src = ? AND caption = ?", seedGallery[i].Src, seedGallery[i].Caption)
		if err != nil {
			return counts, err
		}
		if exists {
			counts.Skipped++
			continue
		}
		row := seedGallery[i]
		if err := s.db.Create(&row).Error; err != nil {
			return counts, apperr.Persistence(err)
		}
		counts.Added++
	}
	return counts, nil
}

func (s *Service) rowExists(model interface{}, query string, args ...interface{}) (bool, error) {
	err := s.db.Where(query, args...).First(model).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, apperr.Persistence(err)
}
