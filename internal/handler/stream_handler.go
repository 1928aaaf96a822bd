package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"feedback-board-api/internal/event"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type StreamHandler struct {
	hub    *event.Hub
	logger *zap.Logger
}

func NewStreamHandler(hub *event.Hub, logger *zap.Logger) *StreamHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamHandler{
		hub:    hub,
		logger: logger,
	}
}

// Stream godoc
// @Summary      실시간 Feedback 이벤트 스트림
// @Description  WebSocket으로 feedback.created, feedback.updated, feedback.deleted, feedback.upvoted, comment.created 이벤트를 수신합니다
// @Tags         stream
// @Success      101 "Switching Protocols"
// @Router       /feedback/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	h.logger.Debug("Stream client connected", zap.String("remote_addr", c.ClientIP()))
	h.hub.Serve(conn)
}
