package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/central-university-dev/go-message-sender/internal/database"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
	"github.com/central-university-dev/go-message-sender/pkg/txs"
	"github.com/jackc/pgx/v5"
)

type MessageRepository struct {
	db *database.PostgresDB
}

func NewMessageRepository(db *database.PostgresDB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) FindByMessageID(ctx context.Context, messageID int64) (*models.Message, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	message := &models.Message{}

	err := querier.QueryRow(ctx,
		"SELECT id, message_id, sender_id, text, is_sent FROM messages WHERE message_id = $1",
		messageID,
	).Scan(&message.ID, &message.MessageID, &message.SenderID, &message.Text, &message.IsSent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domainerrors.ErrMessageNotFound{MessageID: messageID}
		}

		return nil, fmt.Errorf("ошибка при поиске сообщения: %w", err)
	}

	return message, nil
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	err := querier.QueryRow(ctx,
		"INSERT INTO messages (message_id, sender_id, text, is_sent, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		message.MessageID, message.SenderID, message.Text, message.IsSent, time.Now(),
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании сообщения: %w", err)
	}

	return nil
}

func (r *MessageRepository) MarkSent(ctx context.Context, id int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx, "UPDATE messages SET is_sent = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка при отметке сообщения отправленным: %w", err)
	}

	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx, "DELETE FROM messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении сообщения: %w", err)
	}

	return nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	var count int64

	err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM messages").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте сообщений: %w", err)
	}

	return count, nil
}
