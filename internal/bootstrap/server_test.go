package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Register(router *gin.RouterGroup) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func serve(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planner.swagger.json"), []byte(`{"swagger": "2.0"}`), 0o644))

	router := NewRouter(&config.Config{HTTP: config.HTTPConfig{SwaggerDir: dir}}, pingHandler{})

	w := serve(router, "/api/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = serve(router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())

	w = serve(router, "/swagger/planner.swagger.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"swagger": "2.0"}`, w.Body.String())

	w = serve(router, "/docs/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger")
}

func TestNewRouter_NoSwagger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := NewRouter(&config.Config{})

	assert.Equal(t, http.StatusNotFound, serve(router, "/docs/index.html").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, "/api/ping").Code)
}

func TestNewServers_GRPCOptional(t *testing.T) {
	s := newServers(&config.Config{HTTP: config.HTTPConfig{Address: ":0"}})
	assert.Nil(t, s.grpcServer)

	s = newServers(&config.Config{GRPC: config.GRPCConfig{Address: ":0"}})
	require.NotNil(t, s.grpcServer)
	assert.NotNil(t, s.health)
}
