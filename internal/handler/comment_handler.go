package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/response"
	"feedback-board-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment godoc
// @Summary      Comment 작성
// @Description  Feedback에 Comment를 추가합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "Feedback ID"
// @Param        request body dto.CreateCommentRequest true "Comment 작성 요청"
// @Success      201 {object} dto.CommentResponse "작성된 Comment"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Feedback을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err, service.MsgCommentFieldsRequired)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      Comment 목록 조회
// @Description  Feedback의 Comment를 작성 순서대로 조회합니다. 존재하지 않는 Feedback은 빈 배열을 반환합니다
// @Tags         comments
// @Produce      json
// @Param        id path int true "Feedback ID"
// @Success      200 {array} dto.CommentResponse "Comment 목록"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /feedback/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}
