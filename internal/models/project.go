package models

// ProjectModel stores a tree-planting initiative at a school or event site.
// Images holds the ordered public URLs of the project photos; the ceiling is
// enforced by the project service, not the schema.
type ProjectModel struct {
	Base
	Name   string      `json:"name"   gorm:"uniqueIndex;not null"`
	Trees  int         `json:"trees"  gorm:"not null"`
	Images StringArray `json:"images" gorm:"type:longtext"`
}

func (ProjectModel) TableName() string { return "projects" }
