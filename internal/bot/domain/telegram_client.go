package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type TelegramClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error

	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard [][]models.InlineButton) error

	EditMessageText(ctx context.Context, chatID, messageID int64, text string) error

	AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error

	SetMyCommands(ctx context.Context, commands []models.BotCommand) error

	GetBot() *tgbotapi.BotAPI
}
