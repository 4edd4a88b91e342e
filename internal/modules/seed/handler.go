package seed

import (
	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/modules/revalidate"
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
	rg.POST("/seed", authMW, h.run)
}

// POST /seed — idempotent; reports added/skipped per collection.
func (h *Handler) run(c *gin.Context) {
	res, err := h.svc.Run()
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Changed() {
		h.notifier.Notify(c.Request.Context(),
			revalidate.SurfaceHome, revalidate.SurfaceGallery, revalidate.SurfaceAdmin)
	}
	response.OK(c, res)
}
