package models

import (
	"fmt"
	"strconv"
	"strings"

	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

// Формат callback-данных: "<действие>,<флаг>,<id сообщения>", например
// "message_confirmation,true,1074323464". Для действий без аргументов
// строка состоит из одного тега.
const (
	ActionMessageConfirmation = "message_confirmation"
	ActionGenerateToken       = "generate_token"

	callbackPartsCount = 3
)

type CallbackPayload struct {
	Action    string
	Confirmed bool
	MessageID int64
}

func NewConfirmationCallbackData(confirmed bool, messageID int64) string {
	return fmt.Sprintf("%s,%t,%d", ActionMessageConfirmation, confirmed, messageID)
}

// ParseCallbackPayload разбирает callback-данные кнопки. Повреждённая
// строка — ошибка валидации, а не паника: сеть может доставить нажатие
// от устаревшей или чужой клавиатуры.
func ParseCallbackPayload(data string) (*CallbackPayload, error) {
	if data == "" {
		return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
	}

	parts := strings.Split(data, ",")

	switch parts[0] {
	case ActionGenerateToken:
		if len(parts) != 1 {
			return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
		}

		return &CallbackPayload{Action: ActionGenerateToken}, nil
	case ActionMessageConfirmation:
		if len(parts) != callbackPartsCount {
			return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
		}

		if parts[1] != "true" && parts[1] != "false" {
			return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
		}

		messageID, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
		}

		return &CallbackPayload{
			Action:    ActionMessageConfirmation,
			Confirmed: parts[1] == "true",
			MessageID: messageID,
		}, nil
	default:
		return nil, &domainerrors.ErrInvalidCallbackData{Data: data}
	}
}
