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

type UserRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "telegram_id", "is_authorizing", "token_id", "is_owner", "last_send_date").
		From("users").
		Where(sq.Eq{"telegram_id": telegramID})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск пользователя", Cause: err}
	}

	user := &models.User{}

	err = querier.QueryRow(ctx, query, args...).
		Scan(&user.ID, &user.TelegramID, &user.IsAuthorizing, &user.TokenID, &user.IsOwner, &user.LastSendDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrUserNotFound{TelegramID: telegramID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "поиск пользователя", Cause: err}
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()
	insertQuery := r.sq.Insert("users").
		Columns("telegram_id", "is_authorizing", "token_id", "is_owner", "last_send_date", "created_at", "updated_at").
		Values(user.TelegramID, user.IsAuthorizing, user.TokenID, user.IsOwner, user.LastSendDate, now, now).
		Suffix("RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "создание пользователя", Cause: err}
	}

	err = querier.QueryRow(ctx, query, args...).Scan(&user.ID)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "создание пользователя", Cause: err}
	}

	return nil
}

func (r *UserRepository) UpdateAuthorizingStatus(ctx context.Context, userID int64, isAuthorizing bool) error {
	return r.update(ctx, userID, "обновление статуса авторизации", map[string]any{"is_authorizing": isAuthorizing})
}

func (r *UserRepository) UpdateTokenID(ctx context.Context, userID int64, tokenID *int64) error {
	return r.update(ctx, userID, "обновление токена пользователя", map[string]any{"token_id": tokenID})
}

func (r *UserRepository) UpdateLastSendDate(ctx context.Context, userID int64, lastSendDate time.Time) error {
	return r.update(ctx, userID, "обновление даты последней отправки", map[string]any{"last_send_date": lastSendDate})
}

func (r *UserRepository) update(ctx context.Context, userID int64, operation string, values map[string]any) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("users").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": userID})

	for column, value := range values {
		updateQuery = updateQuery.Set(column, value)
	}

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	deleteQuery := r.sq.Delete("users").
		Where(sq.Eq{"id": userID})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "удаление пользователя", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "удаление пользователя", Cause: err}
	}

	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	countQuery := r.sq.Select("COUNT(*)").From("users")

	query, args, err := countQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "подсчёт пользователей", Cause: err}
	}

	var count int64

	err = querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт пользователей", Cause: err}
	}

	return count, nil
}
