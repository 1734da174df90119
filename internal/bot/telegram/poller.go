package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-message-sender/internal/bot/domain"
	"github.com/central-university-dev/go-message-sender/internal/bot/service"
	"github.com/central-university-dev/go-message-sender/internal/common/metrics"
	"github.com/central-university-dev/go-message-sender/internal/common/ratelimit"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type BotService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)

	ProcessMessage(ctx context.Context, message *models.TextMessage) (string, error)

	ProcessCallback(ctx context.Context, callback *models.Callback) (string, error)
}

// Poller читает обновления из длинного опроса Telegram и раздаёт их
// обработчикам. Обновления обрабатываются одной горутиной, поэтому
// события каждого чата идут строго в порядке поступления.
type Poller struct {
	telegramClient domain.TelegramClientAPI
	botService     BotService
	limiter        *ratelimit.ChatRateLimiter
	requestTimeout time.Duration
	logger         *slog.Logger
	updatesChan    tgbotapi.UpdatesChannel
	stopChan       chan struct{}
}

func NewPoller(
	telegramClient domain.TelegramClientAPI,
	botService BotService,
	limiter *ratelimit.ChatRateLimiter,
	requestTimeout time.Duration,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		telegramClient: telegramClient,
		botService:     botService,
		limiter:        limiter,
		requestTimeout: requestTimeout,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Не удалось получить доступ к API бота")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	p.updatesChan = bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Получен сигнал остановки поллера")
				return
			case update := <-p.updatesChan:
				p.processUpdate(&update)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("Остановка Telegram поллера")
	close(p.stopChan)
}

func (p *Poller) processUpdate(update *tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		p.processCallback(update.CallbackQuery)
	case update.Message != nil:
		p.processMessage(update.Message)
	}
}

func (p *Poller) processMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	// Посты каналов приходят без отправителя, авторизовать их некого.
	if message.From == nil {
		p.logger.Warn("Получено сообщение без отправителя",
			"chat_id", chatID,
		)

		p.reply(chatID, service.AnswerUnknownError)

		return
	}

	userID := message.From.ID
	text := message.Text
	username := message.From.UserName

	if !p.limiter.Allow(chatID) {
		p.reply(chatID, service.AnswerTooFast)
		return
	}

	p.logger.Info("Получено сообщение",
		"chat_id", chatID,
		"user_id", userID,
		"username", username,
	)

	updateType := "message"
	if message.IsCommand() {
		updateType = "command"
	}

	metrics.RecordUpdate(updateType)

	ctx, cancel := context.WithTimeout(context.Background(), p.requestTimeout)
	defer cancel()

	var response string

	var err error

	switch {
	case message.IsCommand():
		command := &models.Command{
			ChatID:    chatID,
			UserID:    userID,
			MessageID: int64(message.MessageID),
			Text:      text,
			Username:  username,
			ChatType:  message.Chat.Type,
			Type:      getCommandType("/" + message.Command()),
		}

		response, err = p.botService.ProcessCommand(ctx, command)
	case text == "":
		// Стикеры, фото и прочие сообщения без текста пересылать нечем.
		response = service.AnswerNoText
	default:
		textMessage := &models.TextMessage{
			ChatID:    chatID,
			UserID:    userID,
			MessageID: int64(message.MessageID),
			Text:      text,
			Username:  username,
		}

		response, err = p.botService.ProcessMessage(ctx, textMessage)
	}

	if err != nil {
		p.logger.Error("Ошибка при обработке сообщения",
			"error", err,
			"chat_id", chatID,
		)

		response = service.AnswerUnknownError
	}

	p.reply(chatID, response)
}

func (p *Poller) processCallback(callbackQuery *tgbotapi.CallbackQuery) {
	// Callback от сообщения, которого Telegram уже не хранит, обработать
	// невозможно: неизвестен чат.
	if callbackQuery.Message == nil {
		p.logger.Warn("Получен callback без исходного сообщения",
			"callback_id", callbackQuery.ID,
		)

		return
	}

	chatID := callbackQuery.Message.Chat.ID

	if !p.limiter.Allow(chatID) {
		p.reply(chatID, service.AnswerTooFast)
		return
	}

	p.logger.Info("Получен callback",
		"chat_id", chatID,
		"user_id", callbackQuery.From.ID,
		"data", callbackQuery.Data,
	)

	metrics.RecordUpdate("callback")

	ctx, cancel := context.WithTimeout(context.Background(), p.requestTimeout)
	defer cancel()

	callback := &models.Callback{
		ID:        callbackQuery.ID,
		ChatID:    chatID,
		UserID:    callbackQuery.From.ID,
		MessageID: int64(callbackQuery.Message.MessageID),
		Data:      callbackQuery.Data,
		Username:  callbackQuery.From.UserName,
		ChatType:  callbackQuery.Message.Chat.Type,
	}

	response, err := p.botService.ProcessCallback(ctx, callback)
	if err != nil {
		p.logger.Error("Ошибка при обработке callback",
			"error", err,
			"chat_id", chatID,
			"data", callbackQuery.Data,
		)

		response = service.AnswerUnknownError
	}

	p.reply(chatID, response)
}

func (p *Poller) reply(chatID int64, response string) {
	if response == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.requestTimeout)
	defer cancel()

	if err := p.telegramClient.SendMessage(ctx, chatID, response); err != nil {
		metrics.RecordReplyFailure()

		p.logger.Error("Ошибка при отправке ответа",
			"error", err,
			"chat_id", chatID,
		)
	}
}

func getCommandType(commandName string) models.CommandType {
	switch commandName {
	case "/start":
		return models.CommandStart
	case "/cancel":
		return models.CommandCancel
	case "/admin":
		return models.CommandAdmin
	default:
		return models.CommandUnknown
	}
}
