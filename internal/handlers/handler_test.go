package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"shortr/internal/config"
	"shortr/internal/models"
	"shortr/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	db.AutoMigrate(&models.Link{}, &models.User{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		BaseURL:       "http://localhost:8080",
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	audit := services.NewAuditService(db, logger)
	links := services.NewLinkService(db, audit)
	refresh := services.NewRefreshService(nil, logger)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, db, nil, links, audit, refresh, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := h.SetupRouter()

	// Helper route to establish a session for a given owner id
	r.GET("/test/session/:owner", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(ownerIDKey, c.Param("owner"))
		session.Save()
		c.Status(http.StatusOK)
	})

	return r
}

func sessionCookies(t *testing.T, r *gin.Engine, ownerID string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test/session/"+ownerID, nil)
	r.ServeHTTP(w, req)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}
	return cookies
}
