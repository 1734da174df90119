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

type UserRepository struct {
	db *database.PostgresDB
}

func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	user := &models.User{}

	err := querier.QueryRow(ctx,
		"SELECT id, telegram_id, is_authorizing, token_id, is_owner, last_send_date FROM users WHERE telegram_id = $1",
		telegramID,
	).Scan(&user.ID, &user.TelegramID, &user.IsAuthorizing, &user.TokenID, &user.IsOwner, &user.LastSendDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domainerrors.ErrUserNotFound{TelegramID: telegramID}
		}

		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()

	err := querier.QueryRow(ctx,
		`INSERT INTO users (telegram_id, is_authorizing, token_id, is_owner, last_send_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		user.TelegramID, user.IsAuthorizing, user.TokenID, user.IsOwner, user.LastSendDate, now, now,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateAuthorizingStatus(ctx context.Context, userID int64, isAuthorizing bool) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx,
		"UPDATE users SET is_authorizing = $1, updated_at = $2 WHERE id = $3",
		isAuthorizing, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса авторизации: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateTokenID(ctx context.Context, userID int64, tokenID *int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx,
		"UPDATE users SET token_id = $1, updated_at = $2 WHERE id = $3",
		tokenID, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении токена пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateLastSendDate(ctx context.Context, userID int64, lastSendDate time.Time) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx,
		"UPDATE users SET last_send_date = $1, updated_at = $2 WHERE id = $3",
		lastSendDate, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении даты последней отправки: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	_, err := querier.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	var count int64

	err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте пользователей: %w", err)
	}

	return count, nil
}
