package news

// CreateNewsDTO carries the text fields of a new news item; the image
// arrives as a multipart file part.
type CreateNewsDTO struct {
	Title   string `form:"title" json:"title"`
	Excerpt string `form:"excerpt" json:"excerpt"`
	Link    string `form:"link" json:"link"`
	Color   string `form:"color" json:"color"`
}

// UpdateNewsDTO merges only the provided fields.
type UpdateNewsDTO struct {
	Title   *string `form:"title" json:"title"`
	Excerpt *string `form:"excerpt" json:"excerpt"`
	Link    *string `form:"link" json:"link"`
	Color   *string `form:"color" json:"color"`
}
