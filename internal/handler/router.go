package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minecloud/minecloud-go/internal/config"
	"github.com/minecloud/minecloud-go/internal/middleware"
	"github.com/minecloud/minecloud-go/internal/service"
	"github.com/minecloud/minecloud-go/web"
	"go.uber.org/zap"
)

// NewRouter 注册全部路由
func NewRouter(cfg *config.Config, chatService *service.ChatService, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("加载页面模板失败: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger), middleware.CORS())
	r.SetHTMLTemplate(tmpl)

	chatHandler := NewChatHandler(chatService, logger)
	apiHandler := NewAPIHandler(chatService, cfg.Server.Name, cfg.Server.Title, logger)

	r.GET("/", apiHandler.Index)
	r.StaticFS("/static", http.FS(web.Static()))
	r.POST("/chat", chatHandler.Chat)

	r.GET("/api/health", apiHandler.Health)
	r.GET("/api/stats", apiHandler.Stats)

	if cfg.Chat.WebSocket {
		wsHandler := NewWebSocketHandler(chatService, logger)
		r.GET("/ws", wsHandler.HandleWebSocket)
	}

	return r, nil
}
