package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/minecloud/minecloud-go/internal/model"
	"github.com/minecloud/minecloud-go/internal/stats"
	"go.uber.org/zap"
)

// TimestampLayout 回复时间格式（24 小时制 HH:MM）
const TimestampLayout = "15:04"

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// ChatService 聊天服务
type ChatService struct {
	responder *Responder
	store     stats.Store
	delay     time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// ChatOption 聊天服务选项
type ChatOption func(*ChatService)

// WithDelay 回复前等待固定时长
func WithDelay(d time.Duration) ChatOption {
	return func(s *ChatService) { s.delay = d }
}

// WithClock 替换时钟（测试用）
func WithClock(now func() time.Time) ChatOption {
	return func(s *ChatService) { s.now = now }
}

// NewChatService 创建聊天服务
func NewChatService(responder *Responder, store stats.Store, logger *zap.Logger, opts ...ChatOption) *ChatService {
	s := &ChatService{
		responder: responder,
		store:     store,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply 处理用户消息并生成回复
func (s *ChatService) Reply(ctx context.Context, message string) (*model.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	reply, category := s.responder.ClassifyAndRespond(message)

	s.logger.Debug("消息分类完成",
		zap.String("category", string(category)),
		zap.Int("length", len(message)))

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.store != nil {
		if err := s.store.Incr(ctx, string(category)); err != nil {
			s.logger.Warn("记录分类统计失败",
				zap.String("category", string(category)),
				zap.Error(err))
		}
	}

	return &model.ChatResponse{
		Response:  reply,
		Timestamp: s.now().Format(TimestampLayout),
	}, nil
}

// Stats 返回分类统计，未出现过的分类计为 0
func (s *ChatService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	counts := make(map[string]int64, len(Categories))
	for _, c := range Categories {
		counts[string(c)] = 0
	}

	if s.store != nil {
		snap, err := s.store.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range snap {
			counts[k] = v
		}
	}

	return &model.StatsResponse{
		Total:      stats.Total(counts),
		Categories: counts,
	}, nil
}
