package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

func TestNewToken_ValidHex(t *testing.T) {
	values := []string{
		"0123456789abcdef",
		"ABCDEF",
		"a",
		"00ff00ff00ff00ff00ff00ff00ff00ff",
	}

	for _, value := range values {
		token, err := models.NewToken(value)

		require.NoError(t, err, "значение: %s", value)
		assert.Equal(t, value, token.Value())
	}
}

func TestNewToken_EmptyString(t *testing.T) {
	// В пустой строке нет недопустимых символов: конструктор принимает её.
	token, err := models.NewToken("")

	require.NoError(t, err)
	assert.Empty(t, token.Value())
}

func TestNewToken_InvalidSymbols(t *testing.T) {
	values := []string{
		"xyz",
		"0123456789abcdeg",
		"deadbeef ",
		"токен",
		"dead-beef",
	}

	for _, value := range values {
		_, err := models.NewToken(value)

		require.Error(t, err, "значение: %q", value)
		assert.ErrorIs(t, err, &domainerrors.ErrInvalidTokenFormat{})
	}
}

func TestToken_Equal(t *testing.T) {
	first, err := models.NewToken("deadbeef")
	require.NoError(t, err)

	second, err := models.NewToken("deadbeef")
	require.NoError(t, err)

	third, err := models.NewToken("cafebabe")
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(third))
}

func TestHexTokenGenerator_Generate(t *testing.T) {
	generator := models.NewHexTokenGenerator()

	token, err := generator.Generate()
	require.NoError(t, err)

	assert.Len(t, token.Value(), 32)

	// Сгенерированное значение само проходит валидацию токена.
	_, err = models.NewToken(token.Value())
	assert.NoError(t, err)
}

func TestHexTokenGenerator_GeneratesDistinctTokens(t *testing.T) {
	generator := models.NewHexTokenGenerator()

	first, err := generator.Generate()
	require.NoError(t, err)

	second, err := generator.Generate()
	require.NoError(t, err)

	assert.False(t, first.Equal(second))
}
