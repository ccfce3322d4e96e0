package routes

import (
	"time"

	"timetabler/config"
	"timetabler/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig builds the CORS policy from configuration. An empty or "*"
// origin list leaves every origin allowed.
func CORSConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.CORSAllowedMethods,
		AllowHeaders:     cfg.CORSAllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: cfg.CORSAllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

// RegisterTimetableRoutes registers the timetable generation endpoint.
func RegisterTimetableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/generate-timetable/", hb.GenerateTimetableHandler)
}

// RegisterHealthRoute registers the welcome and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and the CORS policy.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsConfig cors.Config) {
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)
	RegisterTimetableRoutes(r, hb)
}
