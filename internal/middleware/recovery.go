package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feedback-board-api/internal/response"
)

// Recovery turns a handler panic into a 500 error body. http.ErrAbortHandler
// is re-raised so net/http drops the connection without logging a stack.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Error("Panic recovered",
				zap.Any("error", rec),
				zap.String("error_type", fmt.Sprintf("%T", rec)),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("request_id", GetRequestID(c)),
				zap.Bool("response_written", c.Writer.Written()),
				zap.Stack("stacktrace"),
			)

			// A partially sent feedback list or stream cannot take a JSON body anymore
			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
		}()

		c.Next()
	}
}
