// errors стандартизирует ответы об ошибках HTTP-слоя panel-service.
// На вход он принимает ошибку сервисного слоя (sentinel из internal/service
// или ошибку контекста), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей хранилищ.
//
// Источник истинности по маппингу: sentinel-ошибки internal/service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-news-panel/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// HeaderRequestID: заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-Id"

// APIError: единый формат для фронта.
// Code: короткий стабильный код для машиночитаемой обработки на FE.
// Message: безопасное человекочитаемое описание.
// RequestID: прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse: корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - err оборачивает sentinel сервиса - маппим через baseFromService().
//   - иначе - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := baseFromService(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError: хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get(HeaderRequestID); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromService: базовый маппинг ошибок сервиса -> HTTP/FE-код/сообщение:
//   - ErrInvalidArgument (пустые поля, битый multipart, пустой slug) -> 400
//   - ErrUnauthenticated, ErrInvalidCredentials -> 401
//   - ErrForbidden (сущность чужой панели) -> 403
//   - ErrNotFound -> 404
//   - ErrConflict (username, link новости, второй логотип) -> 409
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - ErrUnavailable (хранилище изображений) -> 503
//   - context.DeadlineExceeded -> 504
//   - прочее -> 500/internal
func baseFromService(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "unauthenticated", "invalid credentials"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
