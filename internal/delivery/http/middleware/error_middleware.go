package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/logger"
)

// ErrorHandler maps errors appended to the context onto HTTP responses.
// AppErrors carry their own status code and message; anything else is
// logged server-side and masked as a generic 500 so internal details
// never reach clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("internal error", "error", appErr.Err, "path", c.Request.URL.Path)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}
		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
