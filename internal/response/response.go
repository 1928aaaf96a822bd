package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// OKResponse is the body returned by acknowledgement-only endpoints
type OKResponse struct {
	OK bool `json:"ok"`
}

// SendError writes an error response
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// AbortWithError writes an error response and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// SendSuccess writes data as the response body
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendOK writes {"ok": true}
func SendOK(c *gin.Context) {
	c.JSON(200, OKResponse{OK: true})
}
