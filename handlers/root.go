package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is returned by the root endpoint.
const WelcomeMessage = "Welcome to the PDF Syllabus to Timetable API. Use /generate-timetable/ endpoint to upload PDFs and generate a timetable."

// RootHandler greets API clients.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

// HealthHandler is a liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
