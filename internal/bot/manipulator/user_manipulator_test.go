package manipulator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-message-sender/internal/bot/manipulator"
	"github.com/central-university-dev/go-message-sender/internal/bot/repository/mocks"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

const testTelegramID = int64(654321)

func TestNewUserManipulator_ExactlyOneSource(t *testing.T) {
	repo := new(mocks.UserRepository)
	telegramID := testTelegramID
	user := &models.User{ID: 1, TelegramID: telegramID}

	_, err := manipulator.NewUserManipulator(repo, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewUserManipulator(repo, &telegramID, user)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewUserManipulator(repo, &telegramID, nil)
	assert.NoError(t, err)

	_, err = manipulator.NewUserManipulator(repo, nil, user)
	assert.NoError(t, err)
}

func TestUserManipulator_MutationBeforeLoad(t *testing.T) {
	repo := new(mocks.UserRepository)
	telegramID := testTelegramID

	m, err := manipulator.NewUserManipulator(repo, &telegramID, nil)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = m.GetAuthorizingStatus()
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	err = m.SetAuthorizingStatus(ctx, false)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	err = m.SetClaimedToken(ctx, &models.ValidToken{ID: 1, Token: "deadbeef"})
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	err = m.ClearClaimedToken(ctx)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	err = m.SetLastSendDate(ctx, time.Now())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	_, err = m.GetOwnerStatus()
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	err = m.Delete(ctx)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})

	repo.AssertNotCalled(t, "UpdateAuthorizingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserManipulator_Create(t *testing.T) {
	repo := new(mocks.UserRepository)
	telegramID := testTelegramID

	m, err := manipulator.NewUserManipulator(repo, &telegramID, nil)
	require.NoError(t, err)

	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(user *models.User) bool {
		return user.TelegramID == telegramID &&
			user.IsAuthorizing &&
			user.TokenID == nil &&
			!user.IsOwner &&
			user.LastSendDate == nil
	})).Return(nil).Once()

	user, err := m.Create(ctx)
	require.NoError(t, err)
	assert.True(t, user.IsAuthorizing)

	repo.AssertExpectations(t)
}

func TestUserManipulator_GetThenMutate(t *testing.T) {
	repo := new(mocks.UserRepository)
	telegramID := testTelegramID

	m, err := manipulator.NewUserManipulator(repo, &telegramID, nil)
	require.NoError(t, err)

	ctx := context.Background()

	stored := &models.User{ID: 10, TelegramID: telegramID, IsAuthorizing: true}

	repo.On("FindByTelegramID", ctx, telegramID).Return(stored, nil).Once()
	repo.On("UpdateTokenID", ctx, int64(10), mock.MatchedBy(func(tokenID *int64) bool {
		return tokenID != nil && *tokenID == 5
	})).Return(nil).Once()
	repo.On("UpdateAuthorizingStatus", ctx, int64(10), false).Return(nil).Once()

	_, err = m.Get(ctx)
	require.NoError(t, err)

	err = m.SetClaimedToken(ctx, &models.ValidToken{ID: 5, Token: "deadbeef"})
	require.NoError(t, err)

	err = m.SetAuthorizingStatus(ctx, false)
	require.NoError(t, err)

	user, err := m.User()
	require.NoError(t, err)
	assert.False(t, user.IsAuthorizing)
	require.NotNil(t, user.TokenID)
	assert.Equal(t, int64(5), *user.TokenID)

	repo.AssertExpectations(t)
}

func TestUserManipulator_FromLoadedEntity(t *testing.T) {
	repo := new(mocks.UserRepository)
	user := &models.User{ID: 3, TelegramID: testTelegramID, IsOwner: true}

	m, err := manipulator.NewUserManipulator(repo, nil, user)
	require.NoError(t, err)

	isOwner, err := m.GetOwnerStatus()
	require.NoError(t, err)
	assert.True(t, isOwner)

	// Get и Create по ключу недоступны: ключ не передавался. Это
	// нарушение контракта, а не ошибка пользовательского ввода.
	_, err = m.Get(context.Background())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingLookupKey{})

	_, err = m.Create(context.Background())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingLookupKey{})

	repo.AssertNotCalled(t, "FindByTelegramID", mock.Anything, mock.Anything)
}
