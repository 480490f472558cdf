// service содержит бизнес-логику panel-service:
//   - движок владения панелью (членство как авторизация, каскады);
//   - CRUD рубрик, новостей, баннеров и логотипа;
//   - регистрацию, вход и проверку JWT;
//   - публичные выборки через необязательный кэш.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования при потокобезопасных хранилищах.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/config"
	"github.com/pribylovaa/go-news-panel/internal/storage"
)

var (
	// ErrUnauthenticated: токен отсутствует, просрочен или некорректен (HTTP 401).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCredentials: неизвестный пользователь или неверный пароль (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden: сущность существует, но не принадлежит панели вызывающего (HTTP 403).
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound: сущность не найдена (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument: некорректные входные данные (HTTP 400).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict: конфликт уникальности: username, link новости, второй логотип (HTTP 409).
	ErrConflict = errors.New("already exists")
	// ErrUnavailable: хранилище изображений недоступно (HTTP 503).
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal: внутренняя ошибка сервиса (HTTP 500).
	ErrInternal = errors.New("internal")
)

// Service описывает бизнес-логику panel-service.
type Service struct {
	storage storage.Storage
	assets  storage.AssetStorage
	cache   cache.PublicCache
	cfg     *config.Config
	now     func() time.Time
}

// New создаёт новый экземпляр Service. Кэш публичных выборок по умолчанию выключен.
func New(storage storage.Storage, assets storage.AssetStorage, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		assets:  assets,
		cache:   cache.Nop(),
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetPublicCache устанавливает кэш публичных выборок (опционально).
func (s *Service) SetPublicCache(c cache.PublicCache) {
	if c == nil {
		c = cache.Nop()
	}

	s.cache = c
}

// mapStorageErr переводит ошибку хранилища в ошибку сервиса.
// Ошибки контекста пробрасываются как есть, прочие логируются и становятся ErrInternal.
func mapStorageErr(lg *slog.Logger, op, call string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found", "call", call)

		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrConflict):
		lg.Warn("conflict", "call", call)

		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("invalid argument", "call", call)

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		lg.Warn("context done", "call", call, "err", err)

		return fmt.Errorf("%s: %w", op, err)
	default:
		lg.Error("storage error on "+call, "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// invalidate сбрасывает ключи публичного кэша. Ошибка кэша не валит запрос.
func (s *Service) invalidate(ctx context.Context, lg *slog.Logger, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		lg.Warn("cache invalidate failed", "keys", keys, "err", err)
	}
}
