// log хранит request-scoped *slog.Logger в context.Context.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}

// With дополняет логгер из контекста атрибутами и кладёт результат обратно.
// Используется, когда к запросу привязываются новые поля (например, user_id после аутентификации).
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}

	return Into(ctx, From(ctx).With(args...))
}
