package telegram

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"

	domainmocks "github.com/central-university-dev/go-message-sender/internal/bot/domain/mocks"
	"github.com/central-university-dev/go-message-sender/internal/bot/service"
	"github.com/central-university-dev/go-message-sender/internal/bot/telegram/mocks"
	"github.com/central-university-dev/go-message-sender/internal/common/ratelimit"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

const (
	testChatID = int64(123456)
	testUserID = int64(654321)
)

func newTestPoller(t *testing.T) (*Poller, *mocks.BotService, *domainmocks.TelegramClientAPI) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := ratelimit.NewChatRateLimiter(ctx, 100, time.Minute, logger)

	telegramClient := new(domainmocks.TelegramClientAPI)
	botService := new(mocks.BotService)

	poller := NewPoller(telegramClient, botService, limiter, time.Second, logger)

	return poller, botService, telegramClient
}

func TestPoller_MessageWithoutSender(t *testing.T) {
	poller, botService, telegramClient := newTestPoller(t)

	telegramClient.On("SendMessage", mock.Anything, testChatID, service.AnswerUnknownError).
		Return(nil).Once()

	// Пост канала: Message.From пустой, разыменовывать нечего.
	poller.processMessage(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		Text: "анонс",
	})

	telegramClient.AssertExpectations(t)
	botService.AssertNotCalled(t, "ProcessMessage", mock.Anything, mock.Anything)
	botService.AssertNotCalled(t, "ProcessCommand", mock.Anything, mock.Anything)
}

func TestPoller_TextMessageDispatch(t *testing.T) {
	poller, botService, telegramClient := newTestPoller(t)

	botService.On("ProcessMessage", mock.Anything, mock.MatchedBy(func(message *models.TextMessage) bool {
		return message.ChatID == testChatID &&
			message.UserID == testUserID &&
			message.Text == "привет"
	})).Return(service.AnswerNotAuthorized, nil).Once()
	telegramClient.On("SendMessage", mock.Anything, testChatID, service.AnswerNotAuthorized).
		Return(nil).Once()

	poller.processMessage(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: testUserID, UserName: "testuser"},
		Text: "привет",
	})

	botService.AssertExpectations(t)
	telegramClient.AssertExpectations(t)
}

func TestPoller_MessageWithoutText(t *testing.T) {
	poller, botService, telegramClient := newTestPoller(t)

	telegramClient.On("SendMessage", mock.Anything, testChatID, service.AnswerNoText).
		Return(nil).Once()

	poller.processMessage(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: testUserID},
	})

	telegramClient.AssertExpectations(t)
	botService.AssertNotCalled(t, "ProcessMessage", mock.Anything, mock.Anything)
}
