package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/minecloud/minecloud-go/internal/middleware"
	"github.com/minecloud/minecloud-go/internal/model"
	"github.com/minecloud/minecloud-go/internal/service"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler WebSocket 聊天处理器，协议与 POST /chat 一致
type WebSocketHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

// NewWebSocketHandler 创建 WebSocket 处理器
func NewWebSocketHandler(chatService *service.ChatService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// HandleWebSocket WebSocket 连接入口
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	requestID := middleware.GetRequestID(c)
	h.logger.Info("WebSocket 连接建立", zap.String("requestId", requestID))

	// 消息循环，逐条同步处理
	for {
		var msg model.SocketMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket 读取错误",
					zap.String("requestId", requestID),
					zap.Error(err))
			}
			break
		}

		if err := conn.WriteJSON(h.handleMessage(c, &msg)); err != nil {
			h.logger.Error("WebSocket 写入失败",
				zap.String("requestId", requestID),
				zap.Error(err))
			break
		}
	}

	h.logger.Info("WebSocket 连接断开", zap.String("requestId", requestID))
}

// handleMessage 处理单条消息
func (h *WebSocketHandler) handleMessage(c *gin.Context, msg *model.SocketMessage) model.SocketMessage {
	if msg.Type != model.SocketTypeChat {
		h.logger.Warn("未知消息类型", zap.String("type", msg.Type))
		return model.SocketMessage{Type: model.SocketTypeError, Error: "unknown message type"}
	}

	resp, err := h.chatService.Reply(c.Request.Context(), msg.Message)
	if err != nil {
		_, body := errorResponse(err)
		return model.SocketMessage{Type: model.SocketTypeError, Error: body.Error}
	}

	return model.SocketMessage{
		Type:      model.SocketTypeReply,
		Response:  resp.Response,
		Timestamp: resp.Timestamp,
	}
}
