package mailer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-message-sender/internal/mailer"
)

func TestBuildMessage(t *testing.T) {
	message := mailer.BuildMessage("bot@example.com", "inbox@example.com", "@testuser", "привет, мир")

	assert.Contains(t, message, "From: bot@example.com\r\n")
	assert.Contains(t, message, "To: inbox@example.com\r\n")
	assert.Contains(t, message, "Subject: Новое сообщение из Telegram\r\n")
	assert.Contains(t, message, "charset=\"utf-8\"")
	assert.Contains(t, message, "Отправитель: @testuser")
	assert.Contains(t, message, "привет, мир")
}

func TestBuildMessage_HeadersPrecedeBody(t *testing.T) {
	message := mailer.BuildMessage("bot@example.com", "inbox@example.com", "@testuser", "текст")

	headerEnd := strings.Index(message, "\r\n\r\n")
	assert.Positive(t, headerEnd, "письмо должно содержать разделитель заголовков и тела")

	headers := message[:headerEnd]
	body := message[headerEnd+4:]

	assert.Contains(t, headers, "MIME-Version: 1.0")
	assert.NotContains(t, headers, "текст")
	assert.Contains(t, body, "текст")
}
