package middleware

import (
	"errors"
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/pkg/apperror"
	"glint-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the JSON
// envelope. Non-AppError failures are logged server-side and masked with a
// generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
