package errors

import (
	"fmt"
)

// Ошибки валидации пользовательского ввода. Обрабатываются на месте и
// превращаются в конкретный ответ в чате.

type ErrInvalidTokenFormat struct{}

func (e *ErrInvalidTokenFormat) Error() string {
	return "токен содержит недопустимые символы"
}

func (e *ErrInvalidTokenFormat) Is(target error) bool {
	_, ok := target.(*ErrInvalidTokenFormat)
	return ok
}

type ErrInvalidCallbackData struct {
	Data string
}

func (e *ErrInvalidCallbackData) Error() string {
	return "некорректные callback-данные: " + e.Data
}

func (e *ErrInvalidCallbackData) Is(target error) bool {
	_, ok := target.(*ErrInvalidCallbackData)
	return ok
}

// Нарушения контракта. Это программные ошибки: они поднимаются до общей
// границы обработки в поллере и не превращаются в специальный ответ.

type ErrInvalidConstruction struct {
	Manipulator string
}

func (e *ErrInvalidConstruction) Error() string {
	return fmt.Sprintf("манипулятор %s должен быть создан либо по ключу, либо по загруженной сущности", e.Manipulator)
}

func (e *ErrInvalidConstruction) Is(target error) bool {
	_, ok := target.(*ErrInvalidConstruction)
	return ok
}

type ErrMissingEntity struct {
	Manipulator string
	Operation   string
}

func (e *ErrMissingEntity) Error() string {
	return fmt.Sprintf("операция %s манипулятора %s вызвана до загрузки сущности", e.Operation, e.Manipulator)
}

func (e *ErrMissingEntity) Is(target error) bool {
	_, ok := target.(*ErrMissingEntity)
	return ok
}

type ErrMissingLookupKey struct {
	Manipulator string
	Operation   string
}

func (e *ErrMissingLookupKey) Error() string {
	return fmt.Sprintf("операция %s манипулятора %s требует конструирования по ключу", e.Operation, e.Manipulator)
}

func (e *ErrMissingLookupKey) Is(target error) bool {
	_, ok := target.(*ErrMissingLookupKey)
	return ok
}

type ErrMissingField struct {
	FieldName string
}

func (e *ErrMissingField) Error() string {
	return "отсутствует обязательное поле: " + e.FieldName
}

func (e *ErrMissingField) Is(target error) bool {
	_, ok := target.(*ErrMissingField)
	return ok
}

type ErrInvalidCooldownConfiguration struct{}

func (e *ErrInvalidCooldownConfiguration) Error() string {
	return "для проверки кулдауна должна быть задана либо длительность, либо дата окончания, но не обе"
}

func (e *ErrInvalidCooldownConfiguration) Is(target error) bool {
	_, ok := target.(*ErrInvalidCooldownConfiguration)
	return ok
}

// Отсутствие сущности в хранилище. Не исключение, а обычная ветка
// обработки: "не авторизован", "токен недействителен" и так далее.

type ErrUserNotFound struct {
	TelegramID int64
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("пользователь не найден: %d", e.TelegramID)
}

func (e *ErrUserNotFound) Is(target error) bool {
	_, ok := target.(*ErrUserNotFound)
	return ok
}

type ErrValidTokenNotFound struct{}

func (e *ErrValidTokenNotFound) Error() string {
	return "валидный токен не найден"
}

func (e *ErrValidTokenNotFound) Is(target error) bool {
	_, ok := target.(*ErrValidTokenNotFound)
	return ok
}

type ErrMessageNotFound struct {
	MessageID int64
}

func (e *ErrMessageNotFound) Error() string {
	return fmt.Sprintf("сообщение не найдено: %d", e.MessageID)
}

func (e *ErrMessageNotFound) Is(target error) bool {
	_, ok := target.(*ErrMessageNotFound)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

func (e *ErrUnknownCommand) Is(target error) bool {
	_, ok := target.(*ErrUnknownCommand)
	return ok
}

type ErrUnknownDBAccessType struct {
	AccessType string
}

func (e *ErrUnknownDBAccessType) Error() string {
	return fmt.Sprintf("неизвестный тип доступа к базе данных: %s", e.AccessType)
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrMailDelivery struct {
	Cause error
}

func (e *ErrMailDelivery) Error() string {
	return fmt.Sprintf("ошибка при отправке письма: %v", e.Cause)
}

func (e *ErrMailDelivery) Unwrap() error {
	return e.Cause
}

func (e *ErrMailDelivery) Is(target error) bool {
	_, ok := target.(*ErrMailDelivery)
	return ok
}
