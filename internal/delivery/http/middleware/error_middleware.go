package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-admin/internal/delivery/http/response"
	"jobboard-admin/pkg/apperror"
	"jobboard-admin/pkg/logger"
)

// ErrorHandler converts errors attached to the gin context into the standard
// response envelope. Unknown errors are logged server-side and returned as a
// generic message so internals never leak to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed", "path", c.FullPath(), "code", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
