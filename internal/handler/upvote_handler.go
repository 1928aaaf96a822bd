package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/response"
	"feedback-board-api/internal/service"
)

type UpvoteHandler struct {
	upvoteService service.UpvoteService
}

func NewUpvoteHandler(upvoteService service.UpvoteService) *UpvoteHandler {
	return &UpvoteHandler{
		upvoteService: upvoteService,
	}
}

// Upvote godoc
// @Summary      Feedback Upvote
// @Description  이메일당 Feedback 하나에 한 번만 upvote할 수 있습니다
// @Tags         upvotes
// @Accept       json
// @Produce      json
// @Param        id path int true "Feedback ID"
// @Param        request body dto.UpvoteRequest true "Upvote 요청"
// @Success      200 {object} dto.UpvoteResponse "Upvote 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Feedback을 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 upvote함"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback/{id}/upvote [post]
func (h *UpvoteHandler) Upvote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err, service.MsgUpvoteEmailEmpty)
		return
	}

	result, err := h.upvoteService.Upvote(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
