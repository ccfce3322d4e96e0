package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Detail: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and aborts the chain.
func JSONError(c *gin.Context, logger *zap.Logger, status int, detail string) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.String("detail", detail))
	} else {
		logger.Warn("request rejected", zap.Int("status", status), zap.String("detail", detail))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
