package stats

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// CategoriesKey Redis 中保存分类计数的 hash
const CategoriesKey = "minecloud:stats:categories"

// Store 分类计数存储，只保存聚合计数，不保存消息内容
type Store interface {
	Incr(ctx context.Context, category string) error
	Snapshot(ctx context.Context) (map[string]int64, error)
}

// MemoryStore 内存计数
type MemoryStore struct {
	counts map[string]int64
	mu     sync.Mutex
}

// NewMemoryStore 创建内存计数存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Incr 计数加一
func (s *MemoryStore) Incr(_ context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[category]++
	return nil
}

// Snapshot 返回当前计数副本
func (s *MemoryStore) Snapshot(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}

// RedisStore Redis 计数
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore 创建 Redis 计数存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: CategoriesKey}
}

// Incr 计数加一
func (s *RedisStore) Incr(ctx context.Context, category string) error {
	if err := s.client.HIncrBy(ctx, s.key, category, 1).Err(); err != nil {
		return fmt.Errorf("更新统计失败: %w", err)
	}
	return nil
}

// Snapshot 读取全部计数
func (s *RedisStore) Snapshot(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("读取统计失败: %w", err)
	}

	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("统计值 %s=%q 无效: %w", k, v, err)
		}
		out[k] = n
	}
	return out, nil
}

// Total 计数求和
func Total(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
