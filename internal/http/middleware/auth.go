package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/service"
	logctx "github.com/pribylovaa/go-news-panel/pkg/log"
	"github.com/pribylovaa/go-news-panel/pkg/redact"
)

// TokenVerifier проверяет токен и возвращает id пользователя.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthBearer извлекает Bearer-токен из Authorization и кладёт "сырой" токен в контекст.
// Отсутствие или неверный формат заголовка не является ошибкой: решает RequireAuth.
func AuthBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				ctx := context.WithValue(r.Context(), ctxAuthToken, token)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth пропускает запрос только с валидным токеном, иначе 401.
// id пользователя кладётся в контекст (UserIDFrom) и в логгер запроса.
func RequireAuth(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFrom(r.Context())
			if !ok {
				token = bearerToken(r)
			}

			if token == "" {
				logctx.From(r.Context()).Warn("missing bearer token", "path", r.URL.Path)
				apierrors.WriteError(w, r, service.ErrUnauthenticated)
				return
			}

			userID, err := v.VerifyToken(r.Context(), token)
			if err != nil {
				logctx.From(r.Context()).Warn("token rejected", "token", redact.Token(), "err", err)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = logctx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
