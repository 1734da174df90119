package models

type CommandType string

const (
	CommandStart   CommandType = "/start"
	CommandCancel  CommandType = "/cancel"
	CommandAdmin   CommandType = "/admin"
	CommandUnknown CommandType = "unknown"
)

type Command struct {
	ChatID    int64
	UserID    int64
	MessageID int64
	Text      string
	Username  string
	ChatType  string
	Type      CommandType
}

// TextMessage — входящее текстовое сообщение без команды. В зависимости
// от состояния пользователя это либо токен, либо текст для пересылки.
type TextMessage struct {
	ChatID    int64
	UserID    int64
	MessageID int64
	Text      string
	Username  string
}

// Callback — нажатие inline-кнопки. Data несёт полезную нагрузку в
// формате, описанном в callback.go.
type Callback struct {
	ID        string
	ChatID    int64
	UserID    int64
	MessageID int64
	Data      string
	Username  string
	ChatType  string
}

type BotCommand struct {
	Command     string
	Description string
}

type InlineButton struct {
	Text         string
	CallbackData string
}
