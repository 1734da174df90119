package orm

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/central-university-dev/go-message-sender/internal/database"
	customerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
	"github.com/central-university-dev/go-message-sender/pkg/txs"
	"github.com/jackc/pgx/v5"
)

type MessageRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewMessageRepository(db *database.PostgresDB) *MessageRepository {
	return &MessageRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MessageRepository) FindByMessageID(ctx context.Context, messageID int64) (*models.Message, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "message_id", "sender_id", "text", "is_sent").
		From("messages").
		Where(sq.Eq{"message_id": messageID})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск сообщения", Cause: err}
	}

	message := &models.Message{}

	err = querier.QueryRow(ctx, query, args...).
		Scan(&message.ID, &message.MessageID, &message.SenderID, &message.Text, &message.IsSent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrMessageNotFound{MessageID: messageID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск сообщения", Cause: err}
	}

	return message, nil
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	insertQuery := r.sq.Insert("messages").
		Columns("message_id", "sender_id", "text", "is_sent", "created_at").
		Values(message.MessageID, message.SenderID, message.Text, message.IsSent, time.Now()).
		Suffix("RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "создание сообщения", Cause: err}
	}

	err = querier.QueryRow(ctx, query, args...).Scan(&message.ID)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "создание сообщения", Cause: err}
	}

	return nil
}

func (r *MessageRepository) MarkSent(ctx context.Context, id int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("messages").
		Set("is_sent", true).
		Where(sq.Eq{"id": id})

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "отметка сообщения отправленным", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "отметка сообщения отправленным", Cause: err}
	}

	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	deleteQuery := r.sq.Delete("messages").
		Where(sq.Eq{"id": id})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление сообщения", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление сообщения", Cause: err}
	}

	return nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	countQuery := r.sq.Select("COUNT(*)").From("messages")

	query, args, err := countQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "подсчёт сообщений", Cause: err}
	}

	var count int64

	err = querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт сообщений", Cause: err}
	}

	return count, nil
}
