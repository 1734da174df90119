// Package access отвечает на вопрос "разрешены ли этому пользователю
// административные действия". Вынесен отдельным швом, чтобы решение
// тестировалось и подменялось независимо от обработчиков.
package access

import (
	"github.com/central-university-dev/go-message-sender/internal/bot/manipulator"
)

type OwnershipProver interface {
	Prove() (bool, error)
}

// UserOwnershipProver возвращает флаг владельца загруженного
// пользователя как есть.
type UserOwnershipProver struct {
	userManipulator *manipulator.UserManipulator
}

func NewUserOwnershipProver(userManipulator *manipulator.UserManipulator) *UserOwnershipProver {
	return &UserOwnershipProver{userManipulator: userManipulator}
}

func (p *UserOwnershipProver) Prove() (bool, error) {
	isOwner, err := p.userManipulator.GetOwnerStatus()
	if err != nil {
		return false, err
	}

	return isOwner, nil
}
