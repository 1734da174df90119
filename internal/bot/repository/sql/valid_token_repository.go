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

type ValidTokenRepository struct {
	db *database.PostgresDB
}

func NewValidTokenRepository(db *database.PostgresDB) *ValidTokenRepository {
	return &ValidTokenRepository{db: db}
}

func (r *ValidTokenRepository) FindByValue(ctx context.Context, token string) (*models.ValidToken, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	validToken := &models.ValidToken{}

	err := querier.QueryRow(ctx,
		"SELECT id, token FROM valid_tokens WHERE token = $1",
		token,
	).Scan(&validToken.ID, &validToken.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domainerrors.ErrValidTokenNotFound{}
		}

		return nil, fmt.Errorf("ошибка при поиске валидного токена: %w", err)
	}

	return validToken, nil
}

func (r *ValidTokenRepository) Create(ctx context.Context, validToken *models.ValidToken) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	err := querier.QueryRow(ctx,
		"INSERT INTO valid_tokens (token, created_at) VALUES ($1, $2) RETURNING id",
		validToken.Token, time.Now(),
	).Scan(&validToken.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании валидного токена: %w", err)
	}

	return nil
}

func (r *ValidTokenRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	var count int64

	err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM valid_tokens").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте валидных токенов: %w", err)
	}

	return count, nil
}
