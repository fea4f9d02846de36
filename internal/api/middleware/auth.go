package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkamnoy/PVB-BookingService/internal/api/handlers"
)

type userIDContextKey struct{}

// Auth middleware аутентификации по заголовку X-User-ID
// Сам заголовок выставляет API gateway после проверки сессии;
// сервис доверяет ему и только парсит значение
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "требуется заголовок X-User-ID"})
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "некорректный X-User-ID"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
