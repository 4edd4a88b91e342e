package project

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/modules/revalidate"
	"github.com/onetree-africa/core/internal/pkg/pagination"
	"github.com/onetree-africa/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	notifier *revalidate.Notifier
}

func NewHandler(svc *Service, notifier *revalidate.Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/projects")
	g.GET("", h.listPublic)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
	a.POST("/:id/images", h.addImage)
	a.DELETE("/:id/images/:index", h.removeImage)

	rg.GET("/admin/projects", authMW, h.list)
}

// GET /projects — public, cached
func (h *Handler) listPublic(c *gin.Context) {
	if cached := h.notifier.GetCached(c.Request.Context(), "projects"); cached != "" {
		c.Data(200, "application/json; charset=utf-8", []byte(cached))
		return
	}

	items, err := h.svc.ListPublic()
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := json.Marshal(gin.H{"data": items})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.notifier.SetCached(c.Request.Context(), "projects", string(body))
	c.Data(200, "application/json; charset=utf-8", body)
}

// GET /admin/projects — paginated
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto CreateProjectDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.Created(c, p)
}

// PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProjectDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.OK(c, p)
}

// DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.NoContent(c)
}

// POST /projects/:id/images — multipart "image"
func (h *Handler) addImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
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

	p, err := h.svc.AddImage(c.Request.Context(), c.Param("id"), payload,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.OK(c, p)
}

// DELETE /projects/:id/images/:index
func (h *Handler) removeImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "index must be an integer")
		return
	}
	p, err := h.svc.RemoveImageAt(c.Param("id"), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.OK(c, p)
}
