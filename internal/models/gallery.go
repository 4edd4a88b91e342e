package models

// GalleryModel stores a photo shown on the gallery page.
type GalleryModel struct {
	Base
	Src     string `json:"src"     gorm:"not null"`
	Alt     string `json:"alt"     gorm:"not null"`
	Caption string `json:"caption" gorm:"type:text;not null"`
}

func (GalleryModel) TableName() string { return "gallery_images" }
