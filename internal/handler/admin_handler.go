package handler

import (
	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/response"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Verify godoc
// @Summary      관리자 토큰 확인
// @Description  x-admin-token 헤더가 설정된 토큰과 일치하는지 확인합니다
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Success      200 {object} response.OKResponse "토큰 일치"
// @Failure      401 {object} response.ErrorResponse "토큰 없음 또는 불일치"
// @Router       /admin/verify [get]
func (h *AdminHandler) Verify(c *gin.Context) {
	// The admin middleware has already rejected mismatches
	response.SendOK(c)
}
