package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minecloud/minecloud-go/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Incr(context.Context, string) error { return errors.New("down") }

func (failingStore) Snapshot(context.Context) (map[string]int64, error) {
	return nil, errors.New("down")
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 7, 5, 0, 0, time.Local)
}

func newTestChatService(store stats.Store, opts ...ChatOption) *ChatService {
	opts = append([]ChatOption{WithClock(fixedClock)}, opts...)
	return NewChatService(NewResponder(&sequenceRandom{values: []int{1}}), store, zap.NewNop(), opts...)
}

func TestReply(t *testing.T) {
	s := newTestChatService(stats.NewMemoryStore())

	resp, err := s.Reply(context.Background(), "  Hello  ")
	require.NoError(t, err)
	assert.Equal(t, replies[CategoryGreeting][1], resp.Response)
	assert.Equal(t, "07:05", resp.Timestamp)
}

func TestReplyRejectsEmpty(t *testing.T) {
	s := newTestChatService(stats.NewMemoryStore())

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := s.Reply(context.Background(), msg)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
}

func TestReplyRecordsStats(t *testing.T) {
	store := stats.NewMemoryStore()
	s := newTestChatService(store)
	ctx := context.Background()

	for _, msg := range []string{"hi", "hello", "bye", "what is the weather"} {
		_, err := s.Reply(ctx, msg)
		require.NoError(t, err)
	}
	_, _ = s.Reply(ctx, " ")

	got, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Total)
	assert.Equal(t, int64(2), got.Categories["greeting"])
	assert.Equal(t, int64(1), got.Categories["farewell"])
	assert.Equal(t, int64(0), got.Categories["thanks"])
	assert.Equal(t, int64(1), got.Categories["default"])
}

func TestReplyIgnoresStoreFailure(t *testing.T) {
	s := newTestChatService(failingStore{})

	resp, err := s.Reply(context.Background(), "thanks")
	require.NoError(t, err)
	assert.Equal(t, replies[CategoryThanks][1], resp.Response)

	_, err = s.Stats(context.Background())
	assert.Error(t, err)
}

func TestReplyDelay(t *testing.T) {
	s := newTestChatService(nil, WithDelay(20*time.Millisecond))

	start := time.Now()
	_, err := s.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestReplyDelayCancelled(t *testing.T) {
	s := newTestChatService(nil, WithDelay(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Reply(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
