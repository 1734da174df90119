package repository

import (
	"log/slog"

	"github.com/central-university-dev/go-message-sender/internal/bot/repository/orm"
	sqlrepo "github.com/central-university-dev/go-message-sender/internal/bot/repository/sql"
	"github.com/central-university-dev/go-message-sender/internal/config"
	"github.com/central-university-dev/go-message-sender/internal/database"
	"github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

type Factory struct {
	db     *database.PostgresDB
	config *config.Config
	logger *slog.Logger
}

func NewFactory(db *database.PostgresDB, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		db:     db,
		config: config,
		logger: logger,
	}
}

func (f *Factory) CreateUserRepository() (UserRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория пользователей")
		return orm.NewUserRepository(f.db), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория пользователей")
		return sqlrepo.NewUserRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}

func (f *Factory) CreateValidTokenRepository() (ValidTokenRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория валидных токенов")
		return orm.NewValidTokenRepository(f.db), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория валидных токенов")
		return sqlrepo.NewValidTokenRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}

func (f *Factory) CreateMessageRepository() (MessageRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория сообщений")
		return orm.NewMessageRepository(f.db), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория сообщений")
		return sqlrepo.NewMessageRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}
