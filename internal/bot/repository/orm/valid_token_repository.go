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

type ValidTokenRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewValidTokenRepository(db *database.PostgresDB) *ValidTokenRepository {
	return &ValidTokenRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ValidTokenRepository) FindByValue(ctx context.Context, token string) (*models.ValidToken, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "token").
		From("valid_tokens").
		Where(sq.Eq{"token": token})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск валидного токена", Cause: err}
	}

	validToken := &models.ValidToken{}

	err = querier.QueryRow(ctx, query, args...).Scan(&validToken.ID, &validToken.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrValidTokenNotFound{}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск валидного токена", Cause: err}
	}

	return validToken, nil
}

func (r *ValidTokenRepository) Create(ctx context.Context, validToken *models.ValidToken) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	insertQuery := r.sq.Insert("valid_tokens").
		Columns("token", "created_at").
		Values(validToken.Token, time.Now()).
		Suffix("RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "создание валидного токена", Cause: err}
	}

	err = querier.QueryRow(ctx, query, args...).Scan(&validToken.ID)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "создание валидного токена", Cause: err}
	}

	return nil
}

func (r *ValidTokenRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	countQuery := r.sq.Select("COUNT(*)").From("valid_tokens")

	query, args, err := countQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "подсчёт валидных токенов", Cause: err}
	}

	var count int64

	err = querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт валидных токенов", Cause: err}
	}

	return count, nil
}
