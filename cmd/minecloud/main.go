package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minecloud/minecloud-go/internal/config"
	"github.com/minecloud/minecloud-go/internal/handler"
	"github.com/minecloud/minecloud-go/internal/service"
	"github.com/minecloud/minecloud-go/internal/stats"
	"github.com/minecloud/minecloud-go/pkg/logger"
	"github.com/minecloud/minecloud-go/pkg/redis"
	"go.uber.org/zap"
)

const defaultConfigPath = "configs/minecloud.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 加载 .env（可选）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("加载 .env 失败: %v", err)
	}

	configPath := os.Getenv("MINECLOUD_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("minecloud 服务启动中...", zap.String("config", configPath))
	if cfg.Session.Secret == config.DefaultSessionSecret {
		zapLogger.Warn("SESSION_SECRET 未设置，使用开发默认值")
	}

	// 初始化统计存储
	var store stats.Store = stats.NewMemoryStore()
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			zapLogger.Fatal("连接 Redis 失败", zap.Error(err))
		}
		defer redisClient.Close()
		store = stats.NewRedisStore(redisClient)
		zapLogger.Info("统计数据使用 Redis", zap.String("addr", cfg.Redis.Addr()))
	}

	// 初始化服务
	chatService := service.NewChatService(
		service.NewResponder(nil),
		store,
		zapLogger,
		service.WithDelay(cfg.Chat.ResponseDelay),
	)

	// 初始化路由
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handler.NewRouter(cfg, chatService, zapLogger)
	if err != nil {
		zapLogger.Fatal("初始化路由失败", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	zapLogger.Info("minecloud 服务启动成功",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("websocket", cfg.Chat.WebSocket),
		zap.Duration("responseDelay", cfg.Chat.ResponseDelay))

	if err := runServer(ctx, srv); err != nil {
		zapLogger.Fatal("服务运行失败", zap.Error(err))
	}
	zapLogger.Info("minecloud 服务已停止")
}

// runServer 启动服务，收到退出信号后优雅关闭
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("关闭服务失败: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
