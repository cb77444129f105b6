package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/layananku/LSP-BookingGateway/internal/api/handlers"
	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

const msgUnauthorized = "требуется аутентификация"

type contextKey string

const sessionKey contextKey = "session"

// Auth извлекает идентификацию пользователя из заголовков запроса
// и кладет domain.Session в контекст.
// Требуются заголовки:
//   - X-User-ID - идентификатор пользователя
//   - Authorization: Bearer <token> - креденшл для core backend
//
// X-User-Name опционален и используется для генерации описаний бронирований.
// Запрос без идентификации отклоняется с 401 до выполнения какой-либо работы.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		session := domain.Session{
			UserID: userID,
			Name:   r.Header.Get("X-User-Name"),
			Token:  bearerToken(r),
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext возвращает сессию, положенную middleware Auth
// Для запросов без Auth возвращается пустая (неаутентифицированная) сессия
func SessionFromContext(ctx context.Context) domain.Session {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok {
		return domain.Session{}
	}
	return session
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
