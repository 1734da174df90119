package service

// Тексты ответов бота. Собраны в одном месте, чтобы обработчики и тесты
// ссылались на одни и те же строки.
const (
	AnswerEnterToken        = "Введите токен"
	AnswerTokenExpired      = "Ваш токен истёк. Введите новый токен"
	AnswerAlreadyAuthorized = "Вы уже авторизованы"
	AnswerNotAuthorized     = "Вы не авторизованы. Отправьте команду /start, чтобы начать авторизацию"
	AnswerAuthorized        = "Вы успешно авторизованы"
	AnswerTokenNotValid     = "Токен недействителен. Отправьте другой токен"
	AnswerTokenBadSymbols   = "Токен содержит недопустимые символы. Проверьте токен и попробуйте ещё раз"

	AnswerConfirmSend  = "Отправить сообщение?"
	AnswerMessageSent  = "Сообщение отправлено"
	AnswerSendCanceled = "Отправка сообщения отменена"
	AnswerAlreadySent  = "Сообщение уже было отправлено"
	AnswerNotSender    = "Вы не являетесь отправителем этого сообщения"

	AnswerAuthCanceled    = "Авторизация отменена"
	AnswerNothingToCancel = "Нечего отменять"

	AnswerUnknownCommand = "Неизвестная команда"
	AnswerNotOwner       = "Вы не являетесь владельцем бота"
	AnswerAdminPrompt    = "Что вы хотите сделать?"
	AnswerTokenSentToDM  = "Новый токен отправлен в личные сообщения"

	AnswerNoText       = "Сообщение не содержит текста. Отправьте текстовое сообщение"
	AnswerTooFast      = "Слишком много сообщений. Подождите немного и попробуйте снова"
	AnswerUnknownError = "Произошла неизвестная ошибка"

	AnswerCooldownFormat = "Повторная отправка будет доступна через %d секунд"

	ButtonYes           = "Да"
	ButtonNo            = "Нет"
	ButtonGenerateToken = "Сгенерировать токен"
)
