package manipulator

import (
	"context"

	"github.com/central-university-dev/go-message-sender/internal/bot/repository"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type MessageManipulator struct {
	repo      repository.MessageRepository
	messageID *int64
	message   *models.Message
	sender    *models.User
	text      string
}

// NewMessageManipulator принимает ровно один из messageID и message.
// Отправитель и текст нужны только для Create и проверяются там.
func NewMessageManipulator(
	repo repository.MessageRepository,
	messageID *int64,
	message *models.Message,
	sender *models.User,
	text string,
) (*MessageManipulator, error) {
	if (messageID == nil) == (message == nil) {
		return nil, &domainerrors.ErrInvalidConstruction{Manipulator: "message"}
	}

	return &MessageManipulator{
		repo:      repo,
		messageID: messageID,
		message:   message,
		sender:    sender,
		text:      text,
	}, nil
}

// Get загружает сообщение по Telegram ID входящего сообщения.
func (m *MessageManipulator) Get(ctx context.Context) (*models.Message, error) {
	if m.messageID == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "message", Operation: "Get"}
	}

	message, err := m.repo.FindByMessageID(ctx, *m.messageID)
	if err != nil {
		return nil, err
	}

	m.message = message

	return message, nil
}

// Create сохраняет новое неотправленное сообщение. Без отправителя или
// текста создание невозможно.
func (m *MessageManipulator) Create(ctx context.Context) (*models.Message, error) {
	if m.messageID == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "message", Operation: "Create"}
	}

	if m.sender == nil {
		return nil, &domainerrors.ErrMissingField{FieldName: "sender"}
	}

	if m.text == "" {
		return nil, &domainerrors.ErrMissingField{FieldName: "text"}
	}

	message := &models.Message{
		MessageID: *m.messageID,
		SenderID:  m.sender.ID,
		Text:      m.text,
		IsSent:    false,
	}

	if err := m.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	m.message = message

	return message, nil
}

// MarkSent помечает сообщение отправленным. Отправленное сообщение
// неизменяемо, поэтому обратной операции нет.
func (m *MessageManipulator) MarkSent(ctx context.Context) error {
	if m.message == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "message", Operation: "MarkSent"}
	}

	if err := m.repo.MarkSent(ctx, m.message.ID); err != nil {
		return err
	}

	m.message.IsSent = true

	return nil
}

func (m *MessageManipulator) Delete(ctx context.Context) error {
	if m.message == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "message", Operation: "Delete"}
	}

	return m.repo.Delete(ctx, m.message.ID)
}
