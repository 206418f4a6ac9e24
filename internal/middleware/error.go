package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside/pickleball-api/internal/handler"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

// ErrorHandler converts errors attached to the context into the standard
// response envelope and logs them.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString("request_id")
		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperrors.AsAppError(err); ok {
			c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
	}
}
