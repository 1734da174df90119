package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

func TestNewConfirmationCallbackData(t *testing.T) {
	assert.Equal(t, "message_confirmation,true,1074323464", models.NewConfirmationCallbackData(true, 1074323464))
	assert.Equal(t, "message_confirmation,false,42", models.NewConfirmationCallbackData(false, 42))
}

func TestParseCallbackPayload_Confirmation(t *testing.T) {
	payload, err := models.ParseCallbackPayload("message_confirmation,true,1074323464")
	require.NoError(t, err)

	assert.Equal(t, models.ActionMessageConfirmation, payload.Action)
	assert.True(t, payload.Confirmed)
	assert.Equal(t, int64(1074323464), payload.MessageID)

	payload, err = models.ParseCallbackPayload("message_confirmation,false,7")
	require.NoError(t, err)

	assert.False(t, payload.Confirmed)
	assert.Equal(t, int64(7), payload.MessageID)
}

func TestParseCallbackPayload_GenerateToken(t *testing.T) {
	payload, err := models.ParseCallbackPayload("generate_token")
	require.NoError(t, err)

	assert.Equal(t, models.ActionGenerateToken, payload.Action)
}

func TestParseCallbackPayload_Malformed(t *testing.T) {
	values := []string{
		"",
		"unknown_action",
		"message_confirmation",
		"message_confirmation,true",
		"message_confirmation,maybe,42",
		"message_confirmation,true,not-a-number",
		"message_confirmation,true,42,extra",
		"generate_token,extra",
	}

	for _, value := range values {
		_, err := models.ParseCallbackPayload(value)

		require.Error(t, err, "значение: %q", value)
		assert.ErrorIs(t, err, &domainerrors.ErrInvalidCallbackData{})
	}
}
