package middleware

import (
	"context"
	"net/http"
)

// Middleware: стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxAuthToken
	ctxUserID
)

// RequestIDFrom возвращает X-Request-Id текущего запроса.
func RequestIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxRequestID).(string)
	return v
}

// TokenFrom возвращает "сырой" Bearer-токен, извлечённый AuthBearer.
func TokenFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxAuthToken).(string)
	return v, ok && v != ""
}

// UserIDFrom возвращает id пользователя, проверенного RequireAuth.
func UserIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserID).(string)
	return v, ok && v != ""
}

// WithUserID кладёт id пользователя в контекст (используется RequireAuth и тестами хендлеров).
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

// code: итоговый статус ответа; обработчик, не написавший ничего, отдал 200.
func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w}
}
