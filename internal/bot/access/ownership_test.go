package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-message-sender/internal/bot/access"
	"github.com/central-university-dev/go-message-sender/internal/bot/manipulator"
	"github.com/central-university-dev/go-message-sender/internal/bot/repository/mocks"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

func TestUserOwnershipProver_Prove(t *testing.T) {
	repo := new(mocks.UserRepository)

	owner, err := manipulator.NewUserManipulator(repo, nil, &models.User{ID: 1, IsOwner: true})
	require.NoError(t, err)

	regular, err := manipulator.NewUserManipulator(repo, nil, &models.User{ID: 2, IsOwner: false})
	require.NoError(t, err)

	isOwner, err := access.NewUserOwnershipProver(owner).Prove()
	require.NoError(t, err)
	assert.True(t, isOwner)

	isOwner, err = access.NewUserOwnershipProver(regular).Prove()
	require.NoError(t, err)
	assert.False(t, isOwner)
}

func TestUserOwnershipProver_EntityNotLoaded(t *testing.T) {
	repo := new(mocks.UserRepository)
	telegramID := int64(654321)

	m, err := manipulator.NewUserManipulator(repo, &telegramID, nil)
	require.NoError(t, err)

	_, err = access.NewUserOwnershipProver(m).Prove()
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})
}
