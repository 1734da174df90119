// Package manipulator реализует стейтфул-фасады над репозиториями:
// манипулятор создаётся либо по естественному ключу, либо по уже
// загруженной сущности, после чего мутирующие операции работают с одной
// и той же записью без повторных запросов.
package manipulator

import (
	"context"
	"time"

	"github.com/central-university-dev/go-message-sender/internal/bot/repository"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type UserManipulator struct {
	repo       repository.UserRepository
	telegramID *int64
	user       *models.User
}

// NewUserManipulator принимает ровно один из telegramID и user: оба или
// ни одного — ошибка конструирования.
func NewUserManipulator(repo repository.UserRepository, telegramID *int64, user *models.User) (*UserManipulator, error) {
	if (telegramID == nil) == (user == nil) {
		return nil, &domainerrors.ErrInvalidConstruction{Manipulator: "user"}
	}

	return &UserManipulator{
		repo:       repo,
		telegramID: telegramID,
		user:       user,
	}, nil
}

// Get загружает пользователя по Telegram ID. Отсутствие записи
// возвращается как ErrUserNotFound и ведёт обычную ветку ответа. Вызов
// на манипуляторе, созданном по сущности, — нарушение контракта.
func (m *UserManipulator) Get(ctx context.Context) (*models.User, error) {
	if m.telegramID == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "user", Operation: "Get"}
	}

	user, err := m.repo.FindByTelegramID(ctx, *m.telegramID)
	if err != nil {
		return nil, err
	}

	m.user = user

	return user, nil
}

// Create создаёт пользователя в состоянии авторизации и сохраняет его.
func (m *UserManipulator) Create(ctx context.Context) (*models.User, error) {
	if m.telegramID == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "user", Operation: "Create"}
	}

	user := models.NewUser(*m.telegramID)

	if err := m.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	m.user = user

	return user, nil
}

func (m *UserManipulator) User() (*models.User, error) {
	if m.user == nil {
		return nil, &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "User"}
	}

	return m.user, nil
}

func (m *UserManipulator) GetAuthorizingStatus() (bool, error) {
	if m.user == nil {
		return false, &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "GetAuthorizingStatus"}
	}

	return m.user.IsAuthorizing, nil
}

func (m *UserManipulator) SetAuthorizingStatus(ctx context.Context, isAuthorizing bool) error {
	if m.user == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "SetAuthorizingStatus"}
	}

	if err := m.repo.UpdateAuthorizingStatus(ctx, m.user.ID, isAuthorizing); err != nil {
		return err
	}

	m.user.IsAuthorizing = isAuthorizing

	return nil
}

func (m *UserManipulator) GetClaimedTokenID() (*int64, error) {
	if m.user == nil {
		return nil, &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "GetClaimedTokenID"}
	}

	return m.user.TokenID, nil
}

// SetClaimedToken привязывает валидный токен к пользователю: пользователь
// заявляет токен.
func (m *UserManipulator) SetClaimedToken(ctx context.Context, validToken *models.ValidToken) error {
	if m.user == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "SetClaimedToken"}
	}

	tokenID := validToken.ID

	if err := m.repo.UpdateTokenID(ctx, m.user.ID, &tokenID); err != nil {
		return err
	}

	m.user.TokenID = &tokenID

	return nil
}

// ClearClaimedToken снимает заявку пользователя на токен.
func (m *UserManipulator) ClearClaimedToken(ctx context.Context) error {
	if m.user == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "ClearClaimedToken"}
	}

	if err := m.repo.UpdateTokenID(ctx, m.user.ID, nil); err != nil {
		return err
	}

	m.user.TokenID = nil

	return nil
}

// SetLastSendDate фиксирует момент успешной пересылки, от которого
// отсчитывается кулдаун.
func (m *UserManipulator) SetLastSendDate(ctx context.Context, lastSendDate time.Time) error {
	if m.user == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "SetLastSendDate"}
	}

	if err := m.repo.UpdateLastSendDate(ctx, m.user.ID, lastSendDate); err != nil {
		return err
	}

	m.user.LastSendDate = &lastSendDate

	return nil
}

func (m *UserManipulator) GetOwnerStatus() (bool, error) {
	if m.user == nil {
		return false, &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "GetOwnerStatus"}
	}

	return m.user.IsOwner, nil
}

func (m *UserManipulator) Delete(ctx context.Context) error {
	if m.user == nil {
		return &domainerrors.ErrMissingEntity{Manipulator: "user", Operation: "Delete"}
	}

	return m.repo.Delete(ctx, m.user.ID)
}
