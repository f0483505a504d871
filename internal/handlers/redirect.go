package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RedirectToURL is the public read path. The path segment is the lookup
// key verbatim (no trimming, no case folding). 307 keeps the method and
// body intact when non-GET tooling follows a short link.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_code")

	link, err := h.linkService.GetByShortCode(shortCode)
	if err != nil {
		c.String(http.StatusNotFound, "short link not found")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, link.URL)
}
