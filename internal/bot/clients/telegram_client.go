package clients

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-resty/resty/v2"

	"github.com/central-university-dev/go-message-sender/internal/bot/domain"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type TelegramClient struct {
	bot     *tgbotapi.BotAPI
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func NewTelegramClient(token string, logger *slog.Logger) domain.TelegramClientAPI {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Ошибка при создании Telegram клиента", "error", err)
	}

	return &TelegramClient{
		bot:     bot,
		client:  resty.New(),
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", token),
		logger:  logger,
	}
}

// SetBaseURL устанавливает базовый URL для API Telegram (используется в тестах).
func (c *TelegramClient) SetBaseURL(url string) {
	c.baseURL = url

	if c.bot != nil {
		c.bot.SetAPIEndpoint(url)
	}
}

// sanitizeError маскирует токен бота в тексте ошибки, чтобы он не попадал
// в логи.
func (c *TelegramClient) sanitizeError(err error) error {
	if err == nil {
		return nil
	}

	re := regexp.MustCompile(`https://api\.telegram\.org/bot([^/\s]+)`)

	sanitized := re.ReplaceAllString(err.Error(), "https://api.telegram.org/bot[MASKED_TOKEN]")

	return fmt.Errorf("%s", sanitized)
}

func (c *TelegramClient) call(ctx context.Context, method string, body map[string]any) error {
	var result apiResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("%s/%s", c.baseURL, method))
	if err != nil {
		return c.sanitizeError(err)
	}

	if resp.IsError() || !result.OK {
		return fmt.Errorf("ошибка при вызове метода %s: %s", method, result.Description)
	}

	return nil
}

func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
}

func (c *TelegramClient) SendMessageWithKeyboard(
	ctx context.Context,
	chatID int64,
	text string,
	keyboard [][]models.InlineButton,
) error {
	rows := make([][]map[string]any, 0, len(keyboard))

	for _, row := range keyboard {
		buttons := make([]map[string]any, 0, len(row))

		for _, button := range row {
			buttons = append(buttons, map[string]any{
				"text":          button.Text,
				"callback_data": button.CallbackData,
			})
		}

		rows = append(rows, buttons)
	}

	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
		"reply_markup": map[string]any{
			"inline_keyboard": rows,
		},
	})
}

func (c *TelegramClient) EditMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	return c.call(ctx, "editMessageText", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	})
}

func (c *TelegramClient) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	return c.call(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackQueryID,
	})
}

func (c *TelegramClient) SetMyCommands(ctx context.Context, commands []models.BotCommand) error {
	botCommands := make([]map[string]any, 0, len(commands))

	for _, command := range commands {
		botCommands = append(botCommands, map[string]any{
			"command":     command.Command,
			"description": command.Description,
		})
	}

	return c.call(ctx, "setMyCommands", map[string]any{
		"commands": botCommands,
	})
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}
