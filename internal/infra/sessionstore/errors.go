package sessionstore

import "errors"

var (
	// ErrPendingNotFound возвращается, когда для пользователя нет отложенного подтверждения
	ErrPendingNotFound = errors.New("sessionstore: pending booking not found")

	// ErrSelectionNotFound возвращается, когда для пользователя нет сохраненного списка слотов
	ErrSelectionNotFound = errors.New("sessionstore: pending selection not found")

	// ErrMarshal возвращается при ошибке сериализации состояния
	ErrMarshal = errors.New("sessionstore: failed to marshal state")

	// ErrUnmarshal возвращается при ошибке десериализации состояния
	ErrUnmarshal = errors.New("sessionstore: failed to unmarshal state")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("sessionstore: redis operation failed")
)
