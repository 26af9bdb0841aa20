package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JRossell27/Job-tracker/internal/delivery/http/response"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
	"github.com/JRossell27/Job-tracker/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code != http.StatusInternalServerError {
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients. Log the actual
			// error server-side and send a generic message.
			logger.Log.Error("Internal server error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
