package handlers

import (
	"net/http"

	"shortr/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const ownerIDKey = "owner_id"

// AuthRequired resolves the caller's identity from the session cookie
// first, then the X-API-Key header, and stores the opaque owner id in
// the request context. A denial never says whether the account exists.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if v := session.Get(ownerIDKey); v != nil {
			if id, ok := v.(string); ok && id != "" {
				c.Set(ownerIDKey, id)
				c.Next()
				return
			}
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" {
			var user models.User
			if err := h.db.Where("api_key = ?", apiKey).First(&user).Error; err == nil {
				c.Set(ownerIDKey, user.ID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
		})
	}
}
