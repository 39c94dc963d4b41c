package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/WMS-DockService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	companyIDKey contextKey = "companyID"

	headerUserID = "X-User-ID"
	headerAPIKey = "X-Api-Key"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgInvalidAPIKey = "неизвестный API-ключ"
)

// Auth проверяет наличие числового заголовка X-User-ID и кладёт
// идентификатор пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IntegrationAuth проверяет заголовок X-Api-Key машинного API и кладёт
// идентификатор компании-интегратора в контекст запроса
func IntegrationAuth(apiKeys map[string]int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(headerAPIKey)
			companyID, ok := apiKeys[apiKey]
			if apiKey == "" || !ok {
				handlers.RespondUnauthorized(w, msgInvalidAPIKey)
				return
			}

			ctx := context.WithValue(r.Context(), companyIDKey, companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetCompanyID возвращает идентификатор компании-интегратора из контекста
func GetCompanyID(ctx context.Context) (int64, bool) {
	companyID, ok := ctx.Value(companyIDKey).(int64)
	return companyID, ok
}
