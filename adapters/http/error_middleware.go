package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

// ErrorMiddleware converts every internal failure attached via c.Error
// into a structured response; nothing below this boundary crashes the
// process.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr, zap.String("path", c.Request.URL.Path))
			} else {
				log.Warn("request rejected", zap.String("path", c.Request.URL.Path), zap.String("reason", appErr.Message))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
