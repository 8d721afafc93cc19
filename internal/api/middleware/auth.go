package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/salonhq/scheduling-service/internal/api/handlers"
)

// TenantIDHeader заголовок с идентификатором арендатора.
// Аутентификацию выполняет вышестоящий gateway, сюда приходит уже
// проверенный идентификатор.
const TenantIDHeader = "X-Tenant-ID"

type tenantKey struct{}

// Auth проверяет наличие X-Tenant-ID и кладет его в контекст запроса.
// Запросы без заголовка отклоняются до обращения к хранилищу.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(TenantIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
			return
		}

		tenantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tenantID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-Tenant-ID")
			return
		}

		ctx := context.WithValue(r.Context(), tenantKey{}, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext возвращает идентификатор арендатора из контекста
func TenantFromContext(ctx context.Context) (int64, bool) {
	tenantID, ok := ctx.Value(tenantKey{}).(int64)
	return tenantID, ok
}
