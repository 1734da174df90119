// Package service реализует конверсационную машину состояний бота:
// авторизация по токену, приём сообщения с подтверждением, кулдаун
// повторной отправки, отмена и админ-панель владельца.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/central-university-dev/go-message-sender/internal/bot/access"
	"github.com/central-university-dev/go-message-sender/internal/bot/domain"
	"github.com/central-university-dev/go-message-sender/internal/bot/manipulator"
	"github.com/central-university-dev/go-message-sender/internal/bot/repository"
	"github.com/central-university-dev/go-message-sender/internal/common/cooldown"
	"github.com/central-university-dev/go-message-sender/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
	"github.com/central-university-dev/go-message-sender/pkg/txs"
)

const chatTypePrivate = "private"

// Mailer доставляет подтверждённое сообщение на настроенный адрес.
type Mailer interface {
	Send(ctx context.Context, senderName, text string) error
}

// BotService обрабатывает входящие события. Возвращаемая строка — текст
// ответа для чата; пустая строка означает, что сервис уже ответил сам
// (клавиатурой, редактированием или личным сообщением).
type BotService struct {
	userRepo       repository.UserRepository
	validTokenRepo repository.ValidTokenRepository
	messageRepo    repository.MessageRepository
	txManager      txs.Transactor
	telegramClient domain.TelegramClientAPI
	mailer         Mailer
	tokenGenerator models.TokenGenerator
	sendCooldown   time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewBotService(
	userRepo repository.UserRepository,
	validTokenRepo repository.ValidTokenRepository,
	messageRepo repository.MessageRepository,
	txManager txs.Transactor,
	telegramClient domain.TelegramClientAPI,
	mailer Mailer,
	tokenGenerator models.TokenGenerator,
	sendCooldown time.Duration,
	logger *slog.Logger,
) *BotService {
	return &BotService{
		userRepo:       userRepo,
		validTokenRepo: validTokenRepo,
		messageRepo:    messageRepo,
		txManager:      txManager,
		telegramClient: telegramClient,
		mailer:         mailer,
		tokenGenerator: tokenGenerator,
		sendCooldown:   sendCooldown,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	switch command.Type {
	case models.CommandStart:
		return s.handleStart(ctx, command)
	case models.CommandCancel:
		return s.handleCancel(ctx, command)
	case models.CommandAdmin:
		return s.handleAdmin(ctx, command)
	case models.CommandUnknown:
		return AnswerUnknownCommand, nil
	default:
		return AnswerUnknownCommand, nil
	}
}

// handleStart создаёт нового пользователя в состоянии авторизации или
// сообщает уже существующему его текущее состояние. Пользователь без
// заявленного токена при снятом статусе авторизации возвращается в
// авторизацию: его токен был удалён.
func (s *BotService) handleStart(ctx context.Context, command *models.Command) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &command.UserID, nil)
	if err != nil {
		return "", err
	}

	user, err := userManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			if _, err := userManipulator.Create(ctx); err != nil {
				return "", err
			}

			s.logger.Info("Создан новый пользователь",
				"telegramID", command.UserID,
			)

			return AnswerEnterToken, nil
		}

		return "", err
	}

	if user.IsAuthorizing {
		return AnswerEnterToken, nil
	}

	if user.TokenID == nil {
		if err := userManipulator.SetAuthorizingStatus(ctx, true); err != nil {
			return "", err
		}

		return AnswerTokenExpired, nil
	}

	return AnswerAlreadyAuthorized, nil
}

// handleCancel удаляет пользователя, находящегося в процессе авторизации.
// Отмена отправки сообщения идёт через кнопку "Нет" и сюда не попадает.
func (s *BotService) handleCancel(ctx context.Context, command *models.Command) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &command.UserID, nil)
	if err != nil {
		return "", err
	}

	user, err := userManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			return AnswerNothingToCancel, nil
		}

		return "", err
	}

	if !user.IsAuthorizing {
		return AnswerNothingToCancel, nil
	}

	if err := userManipulator.Delete(ctx); err != nil {
		return "", err
	}

	s.logger.Info("Авторизация отменена, пользователь удалён",
		"telegramID", command.UserID,
	)

	return AnswerAuthCanceled, nil
}

// handleAdmin показывает владельцу панель с кнопкой генерации токена.
// Для остальных команда неотличима от несуществующей.
func (s *BotService) handleAdmin(ctx context.Context, command *models.Command) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &command.UserID, nil)
	if err != nil {
		return "", err
	}

	if _, err := userManipulator.Get(ctx); err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			return AnswerUnknownCommand, nil
		}

		return "", err
	}

	prover := access.NewUserOwnershipProver(userManipulator)

	isOwner, err := prover.Prove()
	if err != nil {
		return "", err
	}

	if !isOwner {
		return AnswerUnknownCommand, nil
	}

	keyboard := [][]models.InlineButton{
		{
			{Text: ButtonGenerateToken, CallbackData: models.ActionGenerateToken},
		},
	}

	if err := s.telegramClient.SendMessageWithKeyboard(ctx, command.ChatID, AnswerAdminPrompt, keyboard); err != nil {
		return "", err
	}

	return "", nil
}

// ProcessMessage обрабатывает свободный текст. В состоянии авторизации
// текст трактуется как токен, иначе — как сообщение для пересылки.
func (s *BotService) ProcessMessage(ctx context.Context, message *models.TextMessage) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &message.UserID, nil)
	if err != nil {
		return "", err
	}

	user, err := userManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			return AnswerNotAuthorized, nil
		}

		return "", err
	}

	if user.IsAuthorizing {
		return s.authorize(ctx, userManipulator, message.Text)
	}

	return s.acceptMessage(ctx, user, message)
}

// authorize сверяет присланный токен со списком валидных. Привязка токена
// и снятие статуса авторизации фиксируются одной транзакцией, чтобы сбой
// между шагами не оставил пользователя в промежуточном состоянии.
func (s *BotService) authorize(
	ctx context.Context,
	userManipulator *manipulator.UserManipulator,
	text string,
) (string, error) {
	token, err := models.NewToken(text)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrInvalidTokenFormat{}) {
			return AnswerTokenBadSymbols, nil
		}

		return "", err
	}

	tokenValue := token.Value()

	validTokenManipulator, err := manipulator.NewValidTokenManipulator(s.validTokenRepo, &tokenValue, nil)
	if err != nil {
		return "", err
	}

	validToken, err := validTokenManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrValidTokenNotFound{}) {
			return AnswerTokenNotValid, nil
		}

		return "", err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := userManipulator.SetClaimedToken(txCtx, validToken); err != nil {
			return err
		}

		return userManipulator.SetAuthorizingStatus(txCtx, false)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Пользователь авторизован",
		"tokenID", validToken.ID,
	)

	return AnswerAuthorized, nil
}

// acceptMessage сохраняет текст как неотправленное сообщение и показывает
// клавиатуру подтверждения, если кулдаун после прошлой отправки прошёл.
func (s *BotService) acceptMessage(
	ctx context.Context,
	user *models.User,
	message *models.TextMessage,
) (string, error) {
	if user.LastSendDate != nil {
		checker, err := cooldown.NewChecker(
			*user.LastSendDate,
			cooldown.WithDuration(s.sendCooldown),
			cooldown.WithNow(s.now),
		)
		if err != nil {
			return "", err
		}

		if !checker.IsPassed() {
			seconds := int64(checker.Remaining().Round(time.Second) / time.Second)
			if seconds == 0 {
				seconds = 1
			}

			return fmt.Sprintf(AnswerCooldownFormat, seconds), nil
		}
	}

	text := message.Text
	if utf8.RuneCountInString(text) > models.MaxMessageTextLength {
		text = string([]rune(text)[:models.MaxMessageTextLength])
	}

	messageManipulator, err := manipulator.NewMessageManipulator(s.messageRepo, &message.MessageID, nil, user, text)
	if err != nil {
		return "", err
	}

	if _, err := messageManipulator.Create(ctx); err != nil {
		return "", err
	}

	keyboard := [][]models.InlineButton{
		{
			{Text: ButtonYes, CallbackData: models.NewConfirmationCallbackData(true, message.MessageID)},
			{Text: ButtonNo, CallbackData: models.NewConfirmationCallbackData(false, message.MessageID)},
		},
	}

	if err := s.telegramClient.SendMessageWithKeyboard(ctx, message.ChatID, AnswerConfirmSend, keyboard); err != nil {
		return "", err
	}

	return "", nil
}

// ProcessCallback разбирает нажатие inline-кнопки. Повреждённые
// callback-данные поднимаются наверх и превращаются в общий ответ об
// ошибке на границе поллера.
func (s *BotService) ProcessCallback(ctx context.Context, callback *models.Callback) (string, error) {
	if err := s.telegramClient.AnswerCallbackQuery(ctx, callback.ID); err != nil {
		s.logger.Warn("Ошибка при ответе на callback query",
			"error", err,
		)
	}

	payload, err := models.ParseCallbackPayload(callback.Data)
	if err != nil {
		return "", err
	}

	switch payload.Action {
	case models.ActionGenerateToken:
		return s.handleGenerateToken(ctx, callback)
	case models.ActionMessageConfirmation:
		return s.handleMessageConfirmation(ctx, callback, payload)
	default:
		return "", &domainerrors.ErrInvalidCallbackData{Data: callback.Data}
	}
}

// handleGenerateToken выпускает новый валидный токен и доставляет его
// владельцу в личные сообщения. В групповом чате значение токена не
// публикуется, туда уходит только уведомление.
func (s *BotService) handleGenerateToken(ctx context.Context, callback *models.Callback) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &callback.UserID, nil)
	if err != nil {
		return "", err
	}

	user, err := userManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			return AnswerNotOwner, nil
		}

		return "", err
	}

	prover := access.NewUserOwnershipProver(userManipulator)

	isOwner, err := prover.Prove()
	if err != nil {
		return "", err
	}

	if !isOwner {
		return AnswerNotOwner, nil
	}

	token, err := s.tokenGenerator.Generate()
	if err != nil {
		return "", err
	}

	tokenValue := token.Value()

	validTokenManipulator, err := manipulator.NewValidTokenManipulator(s.validTokenRepo, &tokenValue, nil)
	if err != nil {
		return "", err
	}

	if _, err := validTokenManipulator.Create(ctx); err != nil {
		return "", err
	}

	metrics.RecordTokenGenerated()

	s.logger.Info("Сгенерирован новый токен",
		"ownerTelegramID", user.TelegramID,
	)

	if err := s.telegramClient.SendMessage(ctx, user.TelegramID, tokenValue); err != nil {
		return "", err
	}

	if callback.ChatType != chatTypePrivate {
		return AnswerTokenSentToDM, nil
	}

	return "", nil
}

// handleMessageConfirmation завершает рукопожатие отправки: "Да"
// пересылает письмо и помечает сообщение отправленным, "Нет" удаляет
// черновик. Повторное нажатие по уже отправленному сообщению — обычный
// ответ, не ошибка: сеть может доставить нажатие дважды. Нажатие по
// сообщению, которого в хранилище нет (например, черновик уже удалён
// отменой), поднимается до общей границы ошибок поллера.
func (s *BotService) handleMessageConfirmation(
	ctx context.Context,
	callback *models.Callback,
	payload *models.CallbackPayload,
) (string, error) {
	userManipulator, err := manipulator.NewUserManipulator(s.userRepo, &callback.UserID, nil)
	if err != nil {
		return "", err
	}

	user, err := userManipulator.Get(ctx)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUserNotFound{}) {
			return AnswerNotSender, nil
		}

		return "", err
	}

	messageManipulator, err := manipulator.NewMessageManipulator(s.messageRepo, &payload.MessageID, nil, nil, "")
	if err != nil {
		return "", err
	}

	message, err := messageManipulator.Get(ctx)
	if err != nil {
		return "", err
	}

	if message.SenderID != user.ID {
		return AnswerNotSender, nil
	}

	if message.IsSent {
		return AnswerAlreadySent, nil
	}

	if !payload.Confirmed {
		if err := messageManipulator.Delete(ctx); err != nil {
			return "", err
		}

		if err := s.telegramClient.EditMessageText(ctx, callback.ChatID, callback.MessageID, AnswerSendCanceled); err != nil {
			return "", err
		}

		return "", nil
	}

	if err := s.mailer.Send(ctx, s.senderName(callback.Username, user.TelegramID), message.Text); err != nil {
		return "", err
	}

	metrics.RecordEmailRelayed()

	// Отметка отправки и дата последней отправки фиксируются атомарно:
	// частичная запись сломала бы и идемпотентность, и кулдаун.
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := messageManipulator.MarkSent(txCtx); err != nil {
			return err
		}

		return userManipulator.SetLastSendDate(txCtx, s.now())
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Сообщение переслано",
		"messageID", payload.MessageID,
	)

	if err := s.telegramClient.EditMessageText(ctx, callback.ChatID, callback.MessageID, AnswerMessageSent); err != nil {
		return "", err
	}

	return "", nil
}

func (s *BotService) senderName(username string, telegramID int64) string {
	if username != "" {
		return "@" + username
	}

	return fmt.Sprintf("id%d", telegramID)
}

// UpdateStorageMetrics обновляет гейджи размеров таблиц. Вызывается
// планировщиком по расписанию.
func (s *BotService) UpdateStorageMetrics(ctx context.Context) error {
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при подсчёте пользователей: %w", err)
	}

	tokenCount, err := s.validTokenRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при подсчёте валидных токенов: %w", err)
	}

	messageCount, err := s.messageRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при подсчёте сообщений: %w", err)
	}

	metrics.SetStorageSize("users", userCount)
	metrics.SetStorageSize("valid_tokens", tokenCount)
	metrics.SetStorageSize("messages", messageCount)

	return nil
}
