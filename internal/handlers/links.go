package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"shortr/internal/services"

	"github.com/gin-gonic/gin"
)

// Entry points for link mutations. Every response, success or failure,
// uses the same envelope so UI code branches on one shape:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "..."}

var shortCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

type CreateLinkRequest struct {
	URL       string `json:"url"`
	ShortCode string `json:"short_code,omitempty"`
}

type UpdateLinkRequest struct {
	URL       *string `json:"url,omitempty"`
	ShortCode *string `json:"short_code,omitempty"`
}

func succeed(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func validateLinkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("url must be a valid absolute URL")
	}
	return nil
}

func validateShortCode(code string) error {
	if !shortCodePattern.MatchString(code) {
		return errors.New("short code must be 3-32 characters of letters, digits, hyphen or underscore")
	}
	return nil
}

// failLinkError collapses service errors into the envelope. Exhaustion of
// the code space is unexpected; it is logged and shown as a generic failure.
func (h *Handler) failLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateShortCode):
		fail(c, http.StatusConflict, "short code already taken")
	case errors.Is(err, services.ErrLinkNotFound):
		fail(c, http.StatusNotFound, "link not found")
	default:
		h.logger.Error("Link operation failed", "error", err)
		fail(c, http.StatusInternalServerError, "something went wrong")
	}
}

func linkIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid link id")
	}
	return uint(id), nil
}

func (h *Handler) shortURLFor(shortCode string) string {
	return strings.TrimRight(h.cfg.BaseURL, "/") + "/r/" + shortCode
}

// ListLinks returns the caller's links, newest first. The dashboard
// version rides along as a weak ETag so stale views revalidate.
func (h *Handler) ListLinks(c *gin.Context) {
	ownerID := c.GetString(ownerIDKey)

	links, err := h.linkService.ListByOwner(ownerID)
	if err != nil {
		h.failLinkError(c, err)
		return
	}

	c.Header("ETag", fmt.Sprintf(`W/"dashboard-%s"`, h.refreshService.Version(ownerID)))
	succeed(c, http.StatusOK, gin.H{"links": links})
}

func (h *Handler) CreateLink(c *gin.Context) {
	ownerID := c.GetString(ownerIDKey)

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Field constraints are checked before any store access; the first
	// violated constraint's message is the one surfaced.
	if err := validateLinkURL(req.URL); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ShortCode != "" {
		if err := validateShortCode(req.ShortCode); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	link, err := h.linkService.Create(ownerID, req.URL, req.ShortCode, c.ClientIP())
	if err != nil {
		h.failLinkError(c, err)
		return
	}

	h.refreshService.Bump(ownerID)

	succeed(c, http.StatusCreated, gin.H{
		"short_code": link.ShortCode,
		"short_url":  h.shortURLFor(link.ShortCode),
	})
}

func (h *Handler) UpdateLink(c *gin.Context) {
	ownerID := c.GetString(ownerIDKey)

	id, err := linkIDParam(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL != nil {
		if err := validateLinkURL(*req.URL); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.ShortCode != nil {
		if err := validateShortCode(*req.ShortCode); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	link, err := h.linkService.Update(id, ownerID, services.UpdateLinkParams{
		URL:       req.URL,
		ShortCode: req.ShortCode,
	}, c.ClientIP())
	if err != nil {
		h.failLinkError(c, err)
		return
	}

	h.refreshService.Bump(ownerID)

	succeed(c, http.StatusOK, gin.H{
		"short_code": link.ShortCode,
		"short_url":  h.shortURLFor(link.ShortCode),
	})
}

func (h *Handler) DeleteLink(c *gin.Context) {
	ownerID := c.GetString(ownerIDKey)

	id, err := linkIDParam(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.linkService.Delete(id, ownerID, c.ClientIP()); err != nil {
		h.failLinkError(c, err)
		return
	}

	h.refreshService.Bump(ownerID)

	succeed(c, http.StatusOK, nil)
}

// LinkQRCode renders a QR PNG for one of the caller's links.
func (h *Handler) LinkQRCode(c *gin.Context) {
	ownerID := c.GetString(ownerIDKey)

	id, err := linkIDParam(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	link, err := h.linkService.GetByIDForOwner(id, ownerID)
	if err != nil {
		h.failLinkError(c, err)
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	data, err := h.qrService.GeneratePNG(services.QROptions{
		Content: h.shortURLFor(link.ShortCode),
		Size:    size,
		FgColor: c.Query("fg"),
		BgColor: c.Query("bg"),
	})
	if err != nil {
		h.logger.Error("QR generation failed", "error", err)
		fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
