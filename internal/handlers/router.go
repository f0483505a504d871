package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("shortr_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/logout", h.LogoutUser)

	// Protected Routes
	authorized := r.Group("/api/v1")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/links", h.ListLinks)
		authorized.POST("/links", h.CreateLink)
		authorized.PATCH("/links/:id", h.UpdateLink)
		authorized.DELETE("/links/:id", h.DeleteLink)
		authorized.GET("/links/:id/qr", h.LinkQRCode)
		authorized.POST("/auth/apikey", h.RotateAPIKey)
	}

	// Public Redirect
	r.GET("/r/:short_code", h.RedirectToURL)

	return r
}
