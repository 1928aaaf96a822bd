package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"feedback-board-api/internal/response"
	"feedback-board-api/internal/service"
	"feedback-board-api/internal/validation"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	// Attach for the request logger
	_ = c.Error(err)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		response.SendError(c, statusCode, appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// handleBindError turns a ShouldBindJSON failure into a 400 response.
// A missing required field yields requiredMsg, a bad email yields the email message.
func handleBindError(c *gin.Context, err error, requiredMsg string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, requiredMsg)
				return
			}
		}
		for _, fe := range verrs {
			if fe.Tag() == validation.EmailTag {
				response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, service.MsgInvalidEmail)
				return
			}
		}
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, verrs.Error())
		return
	}

	if errors.Is(err, io.EOF) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, requiredMsg)
		return
	}

	response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	// Postgres keys are signed 64-bit
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feedback ID")
		return 0, false
	}
	return uint(id), true
}
