package ratelimit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-message-sender/internal/common/ratelimit"
)

func TestChatRateLimiter_AllowWithinQuota(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := ratelimit.NewChatRateLimiter(ctx, 3, time.Minute, logger)

	chatID := int64(123456)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(chatID), "сообщение %d должно пройти", i+1)
	}

	assert.False(t, limiter.Allow(chatID))
}

func TestChatRateLimiter_ChatsAreIndependent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := ratelimit.NewChatRateLimiter(ctx, 1, time.Minute, logger)

	assert.True(t, limiter.Allow(1))
	assert.False(t, limiter.Allow(1))

	// Исчерпанная квота первого чата не влияет на второй.
	assert.True(t, limiter.Allow(2))
}
