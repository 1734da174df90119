package manipulator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-message-sender/internal/bot/manipulator"
	"github.com/central-university-dev/go-message-sender/internal/bot/repository/mocks"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

func TestNewValidTokenManipulator_ExactlyOneSource(t *testing.T) {
	repo := new(mocks.ValidTokenRepository)
	value := "deadbeef"
	validToken := &models.ValidToken{ID: 1, Token: value}

	_, err := manipulator.NewValidTokenManipulator(repo, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewValidTokenManipulator(repo, &value, validToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewValidTokenManipulator(repo, &value, nil)
	assert.NoError(t, err)

	_, err = manipulator.NewValidTokenManipulator(repo, nil, validToken)
	assert.NoError(t, err)
}

func TestValidTokenManipulator_Get(t *testing.T) {
	repo := new(mocks.ValidTokenRepository)
	value := "deadbeef"

	m, err := manipulator.NewValidTokenManipulator(repo, &value, nil)
	require.NoError(t, err)

	ctx := context.Background()

	stored := &models.ValidToken{ID: 5, Token: value}
	repo.On("FindByValue", ctx, value).Return(stored, nil).Once()

	validToken, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, validToken)

	repo.AssertExpectations(t)
}

func TestValidTokenManipulator_GetWithoutKey(t *testing.T) {
	repo := new(mocks.ValidTokenRepository)
	validToken := &models.ValidToken{ID: 1, Token: "deadbeef"}

	m, err := manipulator.NewValidTokenManipulator(repo, nil, validToken)
	require.NoError(t, err)

	_, err = m.Get(context.Background())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingLookupKey{})

	repo.AssertNotCalled(t, "FindByValue", mock.Anything, mock.Anything)
}

func TestValidTokenManipulator_Create(t *testing.T) {
	repo := new(mocks.ValidTokenRepository)
	value := "deadbeef"

	m, err := manipulator.NewValidTokenManipulator(repo, &value, nil)
	require.NoError(t, err)

	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(validToken *models.ValidToken) bool {
		return validToken.Token == value
	})).Return(nil).Once()

	validToken, err := m.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, value, validToken.Token)

	repo.AssertExpectations(t)
}
