package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minecloud/minecloud-go/internal/middleware"
	"github.com/minecloud/minecloud-go/internal/model"
	"github.com/minecloud/minecloud-go/internal/service"
	"go.uber.org/zap"
)

// APIHandler 页面与运维接口处理器
type APIHandler struct {
	chatService *service.ChatService
	serviceName string
	title       string
	logger      *zap.Logger
}

// NewAPIHandler 创建 API 处理器
func NewAPIHandler(chatService *service.ChatService, serviceName, title string, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		chatService: chatService,
		serviceName: serviceName,
		title:       title,
		logger:      logger,
	}
}

// Index 首页
func (h *APIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": h.title})
}

// Health 健康检查
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"service": h.serviceName,
	})
}

// Stats 分类统计
func (h *APIHandler) Stats(c *gin.Context) {
	stats, err := h.chatService.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("读取统计失败",
			zap.String("requestId", middleware.GetRequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: middleware.InternalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, stats)
}
