package middleware

import (
	"errors"
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, response.ErrorBody{
					Kind:    appErr.Kind,
					Message: appErr.Message,
				})
			} else {
				// Never expose internal details to clients; log server-side
				// and return a generic message.
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError,
					"An unexpected error occurred. Please try again later.",
					response.ErrorBody{Kind: apperror.KindInternal, Message: "An unexpected error occurred. Please try again later."})
			}
		}
	}
}
