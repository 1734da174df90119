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

func TestNewMessageManipulator_ExactlyOneSource(t *testing.T) {
	repo := new(mocks.MessageRepository)
	messageID := int64(100)
	message := &models.Message{ID: 1, MessageID: messageID}

	_, err := manipulator.NewMessageManipulator(repo, nil, nil, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewMessageManipulator(repo, &messageID, message, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, &domainerrors.ErrInvalidConstruction{})

	_, err = manipulator.NewMessageManipulator(repo, &messageID, nil, nil, "")
	assert.NoError(t, err)
}

func TestMessageManipulator_CreateRequiresSenderAndText(t *testing.T) {
	repo := new(mocks.MessageRepository)
	messageID := int64(100)
	sender := &models.User{ID: 7}

	ctx := context.Background()

	withoutSender, err := manipulator.NewMessageManipulator(repo, &messageID, nil, nil, "текст")
	require.NoError(t, err)

	_, err = withoutSender.Create(ctx)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingField{})

	withoutText, err := manipulator.NewMessageManipulator(repo, &messageID, nil, sender, "")
	require.NoError(t, err)

	_, err = withoutText.Create(ctx)
	assert.ErrorIs(t, err, &domainerrors.ErrMissingField{})

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageManipulator_Create(t *testing.T) {
	repo := new(mocks.MessageRepository)
	messageID := int64(100)
	sender := &models.User{ID: 7}

	m, err := manipulator.NewMessageManipulator(repo, &messageID, nil, sender, "привет")
	require.NoError(t, err)

	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(message *models.Message) bool {
		return message.MessageID == messageID &&
			message.SenderID == sender.ID &&
			message.Text == "привет" &&
			!message.IsSent
	})).Return(nil).Once()

	message, err := m.Create(ctx)
	require.NoError(t, err)
	assert.False(t, message.IsSent)

	repo.AssertExpectations(t)
}

func TestMessageManipulator_GetWithoutKey(t *testing.T) {
	repo := new(mocks.MessageRepository)
	message := &models.Message{ID: 1, MessageID: 100}

	m, err := manipulator.NewMessageManipulator(repo, nil, message, nil, "")
	require.NoError(t, err)

	_, err = m.Get(context.Background())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingLookupKey{})

	repo.AssertNotCalled(t, "FindByMessageID", mock.Anything, mock.Anything)
}

func TestMessageManipulator_MarkSentBeforeLoad(t *testing.T) {
	repo := new(mocks.MessageRepository)
	messageID := int64(100)

	m, err := manipulator.NewMessageManipulator(repo, &messageID, nil, nil, "")
	require.NoError(t, err)

	err = m.MarkSent(context.Background())
	assert.ErrorIs(t, err, &domainerrors.ErrMissingEntity{})
}

func TestMessageManipulator_GetThenMarkSent(t *testing.T) {
	repo := new(mocks.MessageRepository)
	messageID := int64(100)

	m, err := manipulator.NewMessageManipulator(repo, &messageID, nil, nil, "")
	require.NoError(t, err)

	ctx := context.Background()

	stored := &models.Message{ID: 4, MessageID: messageID, SenderID: 7, Text: "привет"}

	repo.On("FindByMessageID", ctx, messageID).Return(stored, nil).Once()
	repo.On("MarkSent", ctx, int64(4)).Return(nil).Once()

	_, err = m.Get(ctx)
	require.NoError(t, err)

	err = m.MarkSent(ctx)
	require.NoError(t, err)

	assert.True(t, stored.IsSent)

	repo.AssertExpectations(t)
}
