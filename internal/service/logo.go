package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/pribylovaa/go-news-panel/pkg/log"
)

// Logo возвращает логотип панели; ErrNotFound, если его нет.
func (s *Service) Logo(ctx context.Context, userID string) (*models.Logo, error) {
	const op = "service/logo/Logo"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if panel.Logo == "" {
		lg.Warn("logo not set")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	logo, err := s.storage.LogoByID(ctx, panel.Logo)
	if err != nil {
		return nil, mapStorageErr(lg, op, "LogoByID", err)
	}

	return logo, nil
}

// CreateLogo создаёт логотип панели. Если логотип уже есть: ErrConflict (используйте SetLogo).
func (s *Service) CreateLogo(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error) {
	const op = "service/logo/CreateLogo"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if file == nil {
		lg.Warn("invalid argument: logo file is required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if panel.Logo != "" {
		lg.Warn("logo already exists", "logo_id", panel.Logo)

		return nil, fmt.Errorf("%s: %w", op, ErrConflict)
	}

	return s.createLogo(ctx, lg, op, panel, file)
}

// SetLogo создаёт логотип или заменяет изображение существующего.
// Старое изображение освобождается ровно один раз, после сохранения нового.
func (s *Service) SetLogo(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error) {
	const op = "service/logo/SetLogo"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	if file == nil {
		lg.Warn("invalid argument: logo file is required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if panel.Logo == "" {
		return s.createLogo(ctx, lg, op, panel, file)
	}

	current, err := s.storage.LogoByID(ctx, panel.Logo)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Висячая ссылка: запись логотипа удалена, создаём заново.
			lg.Warn("dangling logo reference", "logo_id", panel.Logo)

			return s.createLogo(ctx, lg, op, panel, file)
		}

		return nil, mapStorageErr(lg, op, "LogoByID", err)
	}

	image, err := s.uploadAsset(ctx, lg, op, storage.FolderLogo, file)
	if err != nil {
		return nil, err
	}

	next := *current
	next.Image = image

	updated, err := s.storage.UpdateLogo(ctx, next)
	if err != nil {
		s.destroyAsset(ctx, lg, image)

		return nil, mapStorageErr(lg, op, "UpdateLogo", err)
	}

	s.destroyAsset(ctx, lg, current.Image)
	s.invalidate(ctx, lg, cache.KeyLogos)

	lg.Info("logo replaced", "logo_id", updated.ID)

	return updated, nil
}

// DeleteLogo удаляет логотип панели вместе с изображением.
func (s *Service) DeleteLogo(ctx context.Context, userID string) (*models.AssetResult, error) {
	const op = "service/logo/DeleteLogo"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if panel.Logo == "" {
		lg.Warn("logo not set")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	logo, err := s.storage.LogoByID(ctx, panel.Logo)
	if err != nil {
		return nil, mapStorageErr(lg, op, "LogoByID", err)
	}

	res := s.destroyAsset(ctx, lg, logo.Image)

	if err := s.removeMember(ctx, panel, models.KindLogo, logo.ID); err != nil {
		return nil, mapStorageErr(lg, op, "RemoveMember", err)
	}

	if err := s.storage.DeleteLogo(ctx, logo.ID); err != nil {
		return nil, mapStorageErr(lg, op, "DeleteLogo", err)
	}

	s.invalidate(ctx, lg, cache.KeyLogos)

	return &res, nil
}

func (s *Service) createLogo(ctx context.Context, lg *slog.Logger, op string, panel *models.Panel, file *models.Upload) (*models.Logo, error) {
	image, err := s.uploadAsset(ctx, lg, op, storage.FolderLogo, file)
	if err != nil {
		return nil, err
	}

	logo, err := s.storage.CreateLogo(ctx, models.Logo{Image: image})
	if err != nil {
		s.destroyAsset(ctx, lg, image)

		return nil, mapStorageErr(lg, op, "CreateLogo", err)
	}

	if err := s.addMember(ctx, panel, models.KindLogo, logo.ID); err != nil {
		s.compensateCreate(ctx, lg, logo.ID, image, s.storage.DeleteLogo)

		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyLogos)

	lg.Info("logo created", "logo_id", logo.ID)

	return logo, nil
}
