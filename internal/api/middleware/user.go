package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey string

const userIDKey contextKey = "user_id"

// HeaderUserID заголовок с идентификатором пользователя
const HeaderUserID = "X-User-ID"

// UserID кладет идентификатор пользователя из заголовка X-User-ID в контекст
// Отсутствующий заголовок подменяется defaultUserID: развертывание
// однопользовательское, но ключи состояния остаются per-user
func UserID(defaultUserID string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(HeaderUserID)
			if userID == "" {
				userID = defaultUserID
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
