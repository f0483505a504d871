package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shortr/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRedirectToURL(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/r/nonexistent", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "short link not found", w.Body.String())
		assert.Empty(t, w.Header().Get("Location"))
	})

	t.Run("Temporary Redirect", func(t *testing.T) {
		db.Create(&models.Link{OwnerID: "alice", ShortCode: "go0gle", URL: "https://google.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/r/go0gle", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "https://google.com", w.Header().Get("Location"))
	})

	t.Run("Lookup is verbatim, no case folding", func(t *testing.T) {
		db.Create(&models.Link{OwnerID: "alice", ShortCode: "CaseXY", URL: "https://cased.example"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/r/casexy", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("No auth required", func(t *testing.T) {
		db.Create(&models.Link{OwnerID: "bob", ShortCode: "public", URL: "https://public.example"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/r/public", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	})
}
