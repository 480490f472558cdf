package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/pribylovaa/go-news-panel/pkg/log"
)

type CreateBannerInput struct {
	Link  string
	Image *models.Upload
}

type UpdateBannerInput struct {
	Link  *string
	Image *models.Upload
}

// CreateBanner создаёт баннер панели. Изображение обязательно.
func (s *Service) CreateBanner(ctx context.Context, userID string, input CreateBannerInput) (*models.Banner, error) {
	const op = "service/banners/CreateBanner"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if input.Image == nil {
		lg.Warn("invalid argument: image is required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	image, err := s.uploadAsset(ctx, lg, op, storage.FolderBanner, input.Image)
	if err != nil {
		return nil, err
	}

	banner, err := s.storage.CreateBanner(ctx, models.Banner{Link: strings.TrimSpace(input.Link), Image: image})
	if err != nil {
		s.destroyAsset(ctx, lg, image)

		return nil, mapStorageErr(lg, op, "CreateBanner", err)
	}

	if err := s.addMember(ctx, panel, models.KindBanner, banner.ID); err != nil {
		s.compensateCreate(ctx, lg, banner.ID, image, s.storage.DeleteBanner)

		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyBanners)

	lg.Info("banner created", "banner_id", banner.ID)

	return banner, nil
}

// ListBanners возвращает баннеры панели, сначала новые.
func (s *Service) ListBanners(ctx context.Context, userID string) ([]models.Banner, error) {
	const op = "service/banners/ListBanners"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := s.storage.BannersByIDs(ctx, panel.Banners)
	if err != nil {
		return nil, mapStorageErr(lg, op, "BannersByIDs", err)
	}

	return out, nil
}

// UpdateBanner меняет ссылку и/или изображение баннера панели.
// Старое изображение освобождается после сохранения нового.
func (s *Service) UpdateBanner(ctx context.Context, userID, id string, input UpdateBannerInput) (*models.Banner, error) {
	const op = "service/banners/UpdateBanner"

	lg := log.From(ctx).With("op", op, "user_id", userID, "banner_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	banner, err := s.storage.BannerByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "BannerByID", err)
	}

	if err := assertMember(panel, models.KindBanner, banner.ID); err != nil {
		lg.Warn("banner of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Link == nil && input.Image == nil {
		lg.Warn("invalid argument: empty update")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	next := *banner

	if input.Link != nil {
		next.Link = strings.TrimSpace(*input.Link)
	}

	if input.Image != nil {
		next.Image, err = s.uploadAsset(ctx, lg, op, storage.FolderBanner, input.Image)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.storage.UpdateBanner(ctx, next)
	if err != nil {
		if input.Image != nil {
			s.destroyAsset(ctx, lg, next.Image)
		}

		return nil, mapStorageErr(lg, op, "UpdateBanner", err)
	}

	if input.Image != nil {
		s.destroyAsset(ctx, lg, banner.Image)
	}

	if err := s.addMember(ctx, panel, models.KindBanner, updated.ID); err != nil {
		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyBanners)

	return updated, nil
}

// DeleteBanner удаляет баннер панели вместе с изображением и членством.
func (s *Service) DeleteBanner(ctx context.Context, userID, id string) (*models.AssetResult, error) {
	const op = "service/banners/DeleteBanner"

	lg := log.From(ctx).With("op", op, "user_id", userID, "banner_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	banner, err := s.storage.BannerByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "BannerByID", err)
	}

	if err := assertMember(panel, models.KindBanner, banner.ID); err != nil {
		lg.Warn("banner of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := s.destroyAsset(ctx, lg, banner.Image)

	if err := s.removeMember(ctx, panel, models.KindBanner, banner.ID); err != nil {
		return nil, mapStorageErr(lg, op, "RemoveMember", err)
	}

	if err := s.storage.DeleteBanner(ctx, banner.ID); err != nil {
		return nil, mapStorageErr(lg, op, "DeleteBanner", err)
	}

	s.invalidate(ctx, lg, cache.KeyBanners)

	return &res, nil
}
