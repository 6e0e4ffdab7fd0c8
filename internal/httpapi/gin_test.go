package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newTestRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(newTestHandler(gen), []string{"*"})
}

func TestRouter_GeneratePodcast(t *testing.T) {
	r := newTestRouter(&stubGenerator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/generate-podcast?bunch=science&lang=de", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res singleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "science-de-2025-11-08", res.Episode.ID)
}

func TestRouter_RootRoute(t *testing.T) {
	r := newTestRouter(&stubGenerator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?bunch=nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res invalidResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, defaultRegistry().Categories(), res.AvailableBunches)
}

func TestRouter_History(t *testing.T) {
	r := newTestRouter(&stubGenerator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/generate-podcast?action=history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"success":true,"episodes":[]}`, w.Body.String())
}

func TestRouter_Preflight(t *testing.T) {
	gen := &stubGenerator{}
	r := newTestRouter(gen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/generate-podcast", nil)
	req.Header.Set("Origin", "https://listener.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, int32(0), gen.calls.Load())
}

func TestCorsConfig_RestrictedOrigins(t *testing.T) {
	cfg := corsConfig([]string{"https://podcast.example"})

	assert.Equal(t, false, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://podcast.example"}, cfg.AllowOrigins)
}
