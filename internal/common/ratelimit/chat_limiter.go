// Package ratelimit ограничивает частоту обработки обновлений по чатам,
// чтобы один чат не мог занять бота потоком сообщений.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type chatLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ChatRateLimiter struct {
	chats      map[int64]*chatLimiter
	mu         sync.Mutex
	rate       rate.Limit
	burst      int
	expiration time.Duration
	logger     *slog.Logger

	ctx context.Context
}

func NewChatRateLimiter(
	ctx context.Context,
	messagesPerWindow int,
	window time.Duration,
	logger *slog.Logger,
) *ChatRateLimiter {
	r := rate.Limit(float64(messagesPerWindow) / window.Seconds())

	l := &ChatRateLimiter{
		chats:      make(map[int64]*chatLimiter),
		rate:       r,
		burst:      messagesPerWindow,
		expiration: 1 * time.Hour,
		logger:     logger,
		ctx:        ctx,
	}

	go l.cleanupChats()

	return l
}

func (l *ChatRateLimiter) getChatLimiter(chatID int64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	chat, exists := l.chats[chatID]
	if !exists {
		chat = &chatLimiter{
			limiter:  rate.NewLimiter(l.rate, l.burst),
			lastSeen: time.Now(),
		}
		l.chats[chatID] = chat
	} else {
		chat.lastSeen = time.Now()
	}

	return chat.limiter
}

func (l *ChatRateLimiter) cleanupChats() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			for chatID, chat := range l.chats {
				if time.Since(chat.lastSeen) > l.expiration {
					delete(l.chats, chatID)
				}
			}
			l.mu.Unlock()
		case <-l.ctx.Done():
			return
		}
	}
}

// Allow возвращает false, когда чат исчерпал свою квоту в текущем окне.
func (l *ChatRateLimiter) Allow(chatID int64) bool {
	limiter := l.getChatLimiter(chatID)

	if !limiter.Allow() {
		l.logger.Warn("Превышен лимит сообщений для чата",
			"chat_id", chatID,
		)

		return false
	}

	return true
}
