package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/onetree-africa/core/internal/middleware"
	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/pkg/response"
	sessionpkg "github.com/onetree-africa/core/internal/pkg/session"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
	db  *gorm.DB
}

func NewHandler(svc *Service, db *gorm.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/login", h.login)
	g.POST("/register", h.register)
	g.GET("/check", middleware.OptionalAuth(h.db), h.check)

	a := g.Group("", authMW)
	a.POST("/logout", h.logout)
	a.GET("/me", h.me)
}

// POST /auth/login — issues the session token as JSON and as an httpOnly
// cookie, so both the admin SPA and API clients can authenticate.
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, u, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.CookieName, token, int(sessionpkg.DefaultTTL.Seconds()), "/", "", false, true)
	response.OK(c, loginResponse{Token: token, User: toResponse(u)})
}

// POST /auth/register — first-run only; refused once the admin exists.
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Register(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toResponse(u))
}

// GET /auth/check — never 401s, so the frontend can probe without handling errors.
func (h *Handler) check(c *gin.Context) {
	response.OK(c, gin.H{"authenticated": middleware.IsAuthenticated(c)})
}

// POST /auth/logout — revokes the session and clears the cookie.
func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	response.NoContent(c)
}

// GET /auth/me — the authenticated admin's profile.
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toResponse(u))
}

func toResponse(u *models.UserModel) *userResponse {
	return &userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		LastLoginTime: u.LastLoginTime,
		LastLoginIP:   u.LastLoginIP,
	}
}
