package project

// CreateProjectDTO carries the fields of a new project. Images start empty;
// they are attached one by one through AddImage.
type CreateProjectDTO struct {
	Name  string `form:"name" json:"name"`
	Trees int    `form:"trees" json:"trees"`
}

// UpdateProjectDTO merges only the provided fields.
type UpdateProjectDTO struct {
	Name  *string `form:"name" json:"name"`
	Trees *int    `form:"trees" json:"trees"`
}
