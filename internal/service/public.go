package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/pkg/log"
)

// PublicNews возвращает все новости всех панелей, сначала новые.
func (s *Service) PublicNews(ctx context.Context) ([]models.NewsView, error) {
	const op = "service/public/PublicNews"

	lg := log.From(ctx).With("op", op)

	return cached(ctx, s, lg, cache.KeyNews, func() ([]models.NewsView, error) {
		items, err := s.storage.ListNews(ctx)
		if err != nil {
			return nil, mapStorageErr(lg, op, "ListNews", err)
		}

		return s.newsViews(ctx, lg, op, items)
	})
}

// PublicCategories возвращает все рубрики.
func (s *Service) PublicCategories(ctx context.Context) ([]models.Category, error) {
	const op = "service/public/PublicCategories"

	lg := log.From(ctx).With("op", op)

	return cached(ctx, s, lg, cache.KeyCategories, func() ([]models.Category, error) {
		out, err := s.storage.ListCategories(ctx)
		if err != nil {
			return nil, mapStorageErr(lg, op, "ListCategories", err)
		}

		return out, nil
	})
}

// PublicBanners возвращает все баннеры, сначала новые.
func (s *Service) PublicBanners(ctx context.Context) ([]models.Banner, error) {
	const op = "service/public/PublicBanners"

	lg := log.From(ctx).With("op", op)

	return cached(ctx, s, lg, cache.KeyBanners, func() ([]models.Banner, error) {
		out, err := s.storage.ListBanners(ctx)
		if err != nil {
			return nil, mapStorageErr(lg, op, "ListBanners", err)
		}

		return out, nil
	})
}

// PublicLogos возвращает логотипы всех панелей.
func (s *Service) PublicLogos(ctx context.Context) ([]models.Logo, error) {
	const op = "service/public/PublicLogos"

	lg := log.From(ctx).With("op", op)

	return cached(ctx, s, lg, cache.KeyLogos, func() ([]models.Logo, error) {
		out, err := s.storage.ListLogos(ctx)
		if err != nil {
			return nil, mapStorageErr(lg, op, "ListLogos", err)
		}

		return out, nil
	})
}

// NewsByLink возвращает новость по точному совпадению link; ErrNotFound, если её нет.
func (s *Service) NewsByLink(ctx context.Context, link string) (*models.NewsView, error) {
	const op = "service/public/NewsByLink"

	lg := log.From(ctx).With("op", op, "link", link)

	link = strings.TrimSpace(link)
	if link == "" {
		lg.Warn("invalid argument: empty link")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	news, err := s.storage.NewsByLink(ctx, link)
	if err != nil {
		return nil, mapStorageErr(lg, op, "NewsByLink", err)
	}

	views, err := s.newsViews(ctx, lg, op, []models.News{*news})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// cached читает выборку из кэша, а при промахе загружает её и кладёт в кэш
// с поколением, прочитанным до загрузки. Сбои кэша логируются и не влияют на ответ.
func cached[T any](ctx context.Context, s *Service, lg *slog.Logger, key string, load func() ([]T, error)) ([]T, error) {
	var out []T

	gen, hit, err := s.cache.Get(ctx, key, &out)
	if err != nil {
		lg.Warn("cache get failed", "key", key, "err", err)
	}
	if hit && err == nil {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return nil, err
	}

	switch err := s.cache.Set(ctx, key, gen, out); {
	case err == nil:
	case errors.Is(err, cache.ErrStale):
		lg.Debug("cache set skipped: key invalidated during load", "key", key)
	default:
		lg.Warn("cache set failed", "key", key, "err", err)
	}

	return out, nil
}
