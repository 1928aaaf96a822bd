package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/response"
	"feedback-board-api/internal/service"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// ListFeedback godoc
// @Summary      Feedback 목록 조회
// @Description  모든 Feedback을 upvote/comment 수와 함께 조회합니다. 페이지네이션은 없습니다
// @Tags         feedback
// @Produce      json
// @Param        sortBy query string false "정렬 기준 (upvotes | newest)" default(upvotes)
// @Success      200 {array} dto.FeedbackResponse "Feedback 목록"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	list, err := h.feedbackService.ListFeedback(c.Request.Context(), c.Query("sortBy"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// CreateFeedback godoc
// @Summary      Feedback 생성
// @Description  새 Feedback을 Open 상태로 생성합니다
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFeedbackRequest true "Feedback 생성 요청"
// @Success      201 {object} dto.FeedbackResponse "생성된 Feedback"
// @Failure      400 {object} response.ErrorResponse "필수 필드 누락 또는 잘못된 이메일"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err, service.MsgFeedbackFieldsRequired)
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, feedback)
}

// UpdateFeedback godoc
// @Summary      Feedback 수정 (관리자)
// @Description  title, description, status 중 전달된 필드만 수정합니다
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        id path int true "Feedback ID"
// @Param        request body dto.UpdateFeedbackRequest true "수정할 필드"
// @Success      200 {object} dto.FeedbackResponse "수정된 Feedback"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "관리자 토큰 불일치"
// @Failure      404 {object} response.ErrorResponse "Feedback을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleBindError(c, err, service.MsgNoFieldsToUpdate)
		return
	}

	feedback, err := h.feedbackService.UpdateFeedback(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, feedback)
}

// DeleteFeedback godoc
// @Summary      Feedback 삭제 (관리자)
// @Description  Feedback과 그에 속한 upvote, comment를 하나의 트랜잭션으로 삭제합니다
// @Tags         feedback
// @Produce      json
// @Security     AdminToken
// @Param        id path int true "Feedback ID"
// @Success      200 {object} response.OKResponse "삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      401 {object} response.ErrorResponse "관리자 토큰 불일치"
// @Failure      404 {object} response.ErrorResponse "Feedback을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendOK(c)
}
