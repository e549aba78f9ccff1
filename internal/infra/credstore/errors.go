package credstore

import "errors"

var (
	// ErrCredentialsNotFound возвращается, когда для пользователя нет сохраненного токена
	ErrCredentialsNotFound = errors.New("credstore: credentials not found")

	// ErrMarshal возвращается при ошибке сериализации токена
	ErrMarshal = errors.New("credstore: failed to marshal token")

	// ErrUnmarshal возвращается при ошибке десериализации токена
	ErrUnmarshal = errors.New("credstore: failed to unmarshal token")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("credstore: redis operation failed")
)
