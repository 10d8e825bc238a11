package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

// AdminKeyHeader заголовок с ключом администратора
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth пропускает запрос только с корректным ключом администратора.
// Пустой ключ в конфигурации закрывает административные маршруты полностью.
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminKeyHeader)
			if apiKey == "" || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
