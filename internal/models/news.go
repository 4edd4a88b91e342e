package models

// DefaultNewsColor is the accent applied when a news item carries no color.
const DefaultNewsColor = "#FF6B35"

// NewsModel stores a press mention or announcement shown on the home page.
type NewsModel struct {
	Base
	Title   string `json:"title"   gorm:"index;not null"`
	Excerpt string `json:"excerpt" gorm:"type:text;not null"`
	Link    string `json:"link"    gorm:"not null"`
	Image   string `json:"image"   gorm:"not null"`
	Color   string `json:"color"   gorm:"default:'#FF6B35'"`
}

func (NewsModel) TableName() string { return "news_items" }
