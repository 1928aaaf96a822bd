package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/response"
)

// AdminTokenHeader carries the shared admin secret
const AdminTokenHeader = "x-admin-token"

// AdminAuth rejects requests whose x-admin-token header does not equal token
func AdminAuth(token string) gin.HandlerFunc {
	expected := []byte(token)
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminTokenHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
