package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"timetabler/config"
	"timetabler/handlers"
)

func newBundle() *handlers.HandlerBundle {
	return &handlers.HandlerBundle{
		RootHandler:   handlers.RootHandler,
		HealthHandler: handlers.HealthHandler,
		GenerateTimetableHandler: func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		},
	}
}

func TestCORSConfig_OpenByDefault(t *testing.T) {
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}
	c := CORSConfig(cfg)
	require.True(t, c.AllowAllOrigins)
	require.Empty(t, c.AllowOrigins)
	require.NoError(t, c.Validate())
}

func TestCORSConfig_RestrictedOrigins(t *testing.T) {
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"https://app.example.edu"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}
	c := CORSConfig(cfg)
	require.False(t, c.AllowAllOrigins)
	require.Equal(t, []string{"https://app.example.edu"}, c.AllowOrigins)
	require.NoError(t, c.Validate())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newBundle(), c)

	allowed := httptest.NewRequest(http.MethodGet, "/health", nil)
	allowed.Header.Set("Origin", "https://app.example.edu")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, allowed)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://app.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/health", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, denied)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newBundle(), CORSConfig(&config.Config{
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/generate-timetable/", http.StatusAccepted},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}
