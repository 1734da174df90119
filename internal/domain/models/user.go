package models

import (
	"time"
)

// User — участник чата. TokenID хранит ссылку на заявленный токен как
// скалярный внешний ключ; при удалении токена колонка обнуляется на
// стороне базы (ON DELETE SET NULL).
type User struct {
	ID            int64
	TelegramID    int64
	IsAuthorizing bool
	TokenID       *int64
	IsOwner       bool
	LastSendDate  *time.Time
}

// NewUser создаёт пользователя в начальном состоянии авторизации:
// токен не заявлен, прав владельца нет, отправок не было.
func NewUser(telegramID int64) *User {
	return &User{
		TelegramID:    telegramID,
		IsAuthorizing: true,
		TokenID:       nil,
		IsOwner:       false,
		LastSendDate:  nil,
	}
}

// ValidToken — одноразовый (на уровне аккаунта) авторизационный токен.
type ValidToken struct {
	ID    int64
	Token string
}

// Message — отправленное пользователем сообщение, ожидающее пересылки
// или уже пересланное. MessageID — идентификатор сообщения в Telegram,
// по нему нажатие кнопки подтверждения находит эту запись.
type Message struct {
	ID        int64
	MessageID int64
	SenderID  int64
	Text      string
	IsSent    bool
}

// MaxMessageTextLength совпадает с ограничением Telegram на длину
// текстового сообщения и с шириной колонки text в базе.
const MaxMessageTextLength = 4096
