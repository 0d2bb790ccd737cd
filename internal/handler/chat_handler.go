package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minecloud/minecloud-go/internal/middleware"
	"github.com/minecloud/minecloud-go/internal/model"
	"github.com/minecloud/minecloud-go/internal/service"
	"go.uber.org/zap"
)

// EmptyMessageError 空消息响应文案
const EmptyMessageError = "Message cannot be empty"

// ChatHandler 聊天处理器
type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat 聊天接口
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("请求体解析失败",
			zap.String("requestId", middleware.GetRequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: EmptyMessageError})
		return
	}

	resp, err := h.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		status, body := errorResponse(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("聊天处理失败",
				zap.String("requestId", middleware.GetRequestID(c)),
				zap.Error(err))
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// errorResponse 将错误映射为 HTTP 状态码与响应体
func errorResponse(err error) (int, model.ErrorResponse) {
	if errors.Is(err, service.ErrEmptyMessage) {
		return http.StatusBadRequest, model.ErrorResponse{Error: EmptyMessageError}
	}
	return http.StatusInternalServerError, model.ErrorResponse{Error: middleware.InternalErrorMessage}
}
