package news

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/modules/revalidate"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
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
	g := rg.Group("/news")
	g.GET("", h.listPublic)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)

	rg.GET("/admin/news", authMW, h.list)
}

// GET /news — public, cached
func (h *Handler) listPublic(c *gin.Context) {
	if cached := h.notifier.GetCached(c.Request.Context(), "news"); cached != "" {
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
	h.notifier.SetCached(c.Request.Context(), "news", string(body))
	c.Data(200, "application/json; charset=utf-8", body)
}

// GET /admin/news — paginated
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// POST /news — multipart, image required
func (h *Handler) create(c *gin.Context) {
	var dto CreateNewsDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	file, err := upload.FromForm(c, "image")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	n, err := h.svc.Create(c.Request.Context(), &dto, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.Created(c, n)
}

// PUT /news/:id — multipart, image optional
func (h *Handler) update(c *gin.Context) {
	var dto UpdateNewsDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	file, err := upload.FromForm(c, "image")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	n, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.OK(c, n)
}

// DELETE /news/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), revalidate.SurfaceHome, revalidate.SurfaceAdmin)
	response.NoContent(c)
}
