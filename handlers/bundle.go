// File: timetabler/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Timetable endpoints
	GenerateTimetableHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle around a timetable handler.
func NewHandlerBundle(th *TimetableHandler) *HandlerBundle {
	return &HandlerBundle{
		RootHandler:              RootHandler,
		HealthHandler:            HealthHandler,
		GenerateTimetableHandler: th.GenerateTimetableHandler,
	}
}
