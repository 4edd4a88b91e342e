package gallery

type CreateGalleryDTO struct {
	Alt     string `form:"alt" json:"alt"`
	Caption string `form:"caption" json:"caption"`
}

type UpdateGalleryDTO struct {
	Alt     *string `form:"alt" json:"alt"`
	Caption *string `form:"caption" json:"caption"`
}
