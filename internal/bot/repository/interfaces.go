package repository

import (
	"context"
	"time"

	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

// Репозитории возвращают доменные ошибки Err*NotFound вместо pgx.ErrNoRows,
// чтобы обработчики различали "нет записи" и сбой запроса.

type UserRepository interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)

	Create(ctx context.Context, user *models.User) error

	UpdateAuthorizingStatus(ctx context.Context, userID int64, isAuthorizing bool) error

	UpdateTokenID(ctx context.Context, userID int64, tokenID *int64) error

	UpdateLastSendDate(ctx context.Context, userID int64, lastSendDate time.Time) error

	Delete(ctx context.Context, userID int64) error

	Count(ctx context.Context) (int64, error)
}

type ValidTokenRepository interface {
	FindByValue(ctx context.Context, token string) (*models.ValidToken, error)

	Create(ctx context.Context, validToken *models.ValidToken) error

	Count(ctx context.Context) (int64, error)
}

type MessageRepository interface {
	FindByMessageID(ctx context.Context, messageID int64) (*models.Message, error)

	Create(ctx context.Context, message *models.Message) error

	MarkSent(ctx context.Context, id int64) error

	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
}
