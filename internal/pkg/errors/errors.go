package errors

import (
	"errors"
	"fmt"
)

// Базовые ошибки бизнес-логики. Сервисы оборачивают их через Wrap,
// добавляя человекочитаемую причину; обработчики сопоставляют через errors.Is.
var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("not found")

	// ErrForbidden возвращается, когда у вызывающего нет нужной роли
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyExists возвращается при нарушении уникальности (дубликат pending-заявки и т.п.)
	ErrAlreadyExists = errors.New("already exists")

	// ErrDuplicateEmail возвращается при регистрации с уже занятым email
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAlreadyMember возвращается, когда пользователь уже является сотрудником компании
	ErrAlreadyMember = errors.New("user is already a member of the company")

	// ErrInvalidOperation возвращается для недопустимых действий (удаление себя и т.п.)
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidQuizDefinition возвращается для некорректного определения викторины
	ErrInvalidQuizDefinition = errors.New("invalid quiz definition")

	// ErrPasswordUnchanged возвращается, когда новый пароль совпадает со старым
	ErrPasswordUnchanged = errors.New("password unchanged")

	// ErrUnauthenticated возвращается при неудачной проверке учетных данных
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInternal возвращается при неожиданных ошибках хранилища
	ErrInternal = errors.New("internal error")
)

// Wrap оборачивает базовую ошибку с указанием причины.
// errors.Is(Wrap(ErrForbidden, "..."), ErrForbidden) == true.
func Wrap(kind error, reason string) error {
	return fmt.Errorf("%w: %s", kind, reason)
}

// Wrapf оборачивает базовую ошибку с форматированной причиной.
func Wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Internal оборачивает низкоуровневую ошибку хранилища в ErrInternal,
// сохраняя исходную ошибку в тексте.
func Internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
