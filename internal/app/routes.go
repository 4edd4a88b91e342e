package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/middleware"
	"github.com/onetree-africa/core/internal/modules/auth"
	"github.com/onetree-africa/core/internal/modules/gallery"
	"github.com/onetree-africa/core/internal/modules/news"
	"github.com/onetree-africa/core/internal/modules/project"
	"github.com/onetree-africa/core/internal/modules/revalidate"
	"github.com/onetree-africa/core/internal/modules/seed"
	"github.com/onetree-africa/core/internal/modules/servertime"
	"github.com/onetree-africa/core/internal/modules/storage/upload"
	"github.com/onetree-africa/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() error {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(a.rc.Raw()))
	r.Use(middleware.Idempotence(a.rc.Raw()))

	uploadSvc, err := upload.NewService(a.cfg)
	if err != nil {
		return err
	}
	// Locally stored uploads are served straight from disk.
	if local, ok := uploadSvc.Backend().(*upload.LocalStorage); ok {
		r.Static(upload.PublicPrefix, local.Dir())
	}

	notifier := revalidate.NewNotifier(a.rc, a.logger)

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))

	api.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	api.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	servertime.RegisterRoutes(api)

	authSvc := auth.NewService(db)
	auth.NewHandler(authSvc, db).RegisterRoutes(api, authMW)

	projectSvc := project.NewService(db, uploadSvc, a.cfg.Upload.MaxProjectImages)
	project.NewHandler(projectSvc, notifier).RegisterRoutes(api, authMW)

	newsSvc := news.NewService(db, uploadSvc)
	news.NewHandler(newsSvc, notifier).RegisterRoutes(api, authMW)

	gallerySvc := gallery.NewService(db, uploadSvc)
	gallery.NewHandler(gallerySvc, notifier).RegisterRoutes(api, authMW)

	upload.NewHandler(uploadSvc).RegisterRoutes(api, authMW)

	seedSvc := seed.NewService(db)
	seed.NewHandler(seedSvc, notifier).RegisterRoutes(api, authMW)

	return nil
}
