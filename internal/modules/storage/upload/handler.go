package upload

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/pkg/response"
)

// Handler exposes a standalone upload endpoint for the admin dashboard.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

// POST /upload — multipart "file"
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	stored, err := h.svc.Store(c.Request.Context(), payload, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stored)
}
