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

// resolvePanel загружает панель пользователя.
// Отсутствие пользователя или панели (или битый id): ErrNotFound.
func (s *Service) resolvePanel(ctx context.Context, userID string) (*models.Panel, error) {
	_, panel, err := s.resolveOwner(ctx, userID)

	return panel, err
}

// resolveOwner загружает пользователя и его панель.
func (s *Service) resolveOwner(ctx context.Context, userID string) (*models.User, *models.Panel, error) {
	const op = "service/panel/resolveOwner"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, nil, mapStorageErr(lg, op, "UserByID", err)
	}

	panel, err := s.storage.PanelByID(ctx, user.PanelID)
	if err != nil {
		return nil, nil, mapStorageErr(lg, op, "PanelByID", err)
	}

	return user, panel, nil
}

// assertMember: единственная проверка прав: id должен входить в набор kind панели.
func assertMember(panel *models.Panel, kind models.EntityKind, id string) error {
	if !panel.Has(kind, id) {
		return ErrForbidden
	}

	return nil
}

// addMember добавляет id в набор панели в хранилище и в памяти. Повтор: no-op.
func (s *Service) addMember(ctx context.Context, panel *models.Panel, kind models.EntityKind, id string) error {
	if err := s.storage.AddMember(ctx, panel.ID, kind, id); err != nil {
		return err
	}

	panel.Add(kind, id)

	return nil
}

// removeMember убирает id из набора панели; отсутствующий id: no-op.
func (s *Service) removeMember(ctx context.Context, panel *models.Panel, kind models.EntityKind, id string) error {
	if err := s.storage.RemoveMember(ctx, panel.ID, kind, id); err != nil {
		return err
	}

	panel.Remove(kind, id)

	return nil
}

// uploadAsset загружает файл, если он передан. Отказ валидации: ErrInvalidArgument,
// прочие сбои хранилища изображений: ErrUnavailable.
func (s *Service) uploadAsset(ctx context.Context, lg *slog.Logger, op, folder string, file *models.Upload) (models.Asset, error) {
	if file == nil {
		return models.Asset{}, nil
	}

	asset, err := s.assets.Upload(ctx, folder, *file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument: rejected upload", "folder", folder, "content_type", file.ContentType, "size", file.Size)

			return models.Asset{}, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return models.Asset{}, fmt.Errorf("%s: %w", op, err)
		default:
			lg.Error("asset upload failed", "folder", folder, "err", err)

			return models.Asset{}, fmt.Errorf("%s: %w", op, ErrUnavailable)
		}
	}

	return asset, nil
}

// destroyAsset удаляет изображение и возвращает итог. Сбой не прерывает операцию.
func (s *Service) destroyAsset(ctx context.Context, lg *slog.Logger, asset models.Asset) models.AssetResult {
	if asset.ID == "" {
		return models.AssetResult{Result: models.AssetSkipped}
	}

	res := models.AssetResult{ID: asset.ID, Result: models.AssetOK}

	if err := s.assets.Destroy(ctx, asset.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("asset already gone", "asset_id", asset.ID)
			res.Result = models.AssetNotFound

			return res
		}

		lg.Warn("asset destroy failed", "asset_id", asset.ID, "err", err)
		res.Result = models.AssetFailed
	}

	return res
}

// compensateCreate откатывает создание записи, чьё членство не удалось сохранить.
func (s *Service) compensateCreate(ctx context.Context, lg *slog.Logger, id string, image models.Asset, del func(context.Context, string) error) {
	if err := del(ctx, id); err != nil {
		lg.Error("compensation: delete record failed", "id", id, "err", err)
	}

	if image.ID == "" {
		return
	}

	if err := s.assets.Destroy(ctx, image.ID); err != nil {
		lg.Error("compensation: destroy asset failed", "asset_id", image.ID, "err", err)
	}
}

// cascadeDeleteCategory удаляет рубрику вместе со всеми её новостями:
// новости (во всех панелях) и их изображения, членство этих новостей,
// изображение рубрики, членство рубрики и саму запись.
func (s *Service) cascadeDeleteCategory(ctx context.Context, panel *models.Panel, category *models.Category) (*models.DeleteCategoryResult, error) {
	const op = "service/panel/cascadeDeleteCategory"

	lg := log.From(ctx).With("op", op, "panel_id", panel.ID, "category_id", category.ID)

	deleted, err := s.storage.DeleteNewsByCategory(ctx, category.ID)
	if err != nil {
		return nil, mapStorageErr(lg, op, "DeleteNewsByCategory", err)
	}

	ids := make([]string, 0, len(deleted))
	for _, n := range deleted {
		s.destroyAsset(ctx, lg, n.Image)
		ids = append(ids, n.ID)
	}

	if len(ids) > 0 {
		if err := s.storage.RemoveMemberEverywhere(ctx, models.KindNews, ids); err != nil {
			return nil, mapStorageErr(lg, op, "RemoveMemberEverywhere", err)
		}

		for _, id := range ids {
			panel.Remove(models.KindNews, id)
		}
	}

	assetRes := s.destroyAsset(ctx, lg, category.Image)

	if err := s.removeMember(ctx, panel, models.KindCategory, category.ID); err != nil {
		return nil, mapStorageErr(lg, op, "RemoveMember", err)
	}

	if err := s.storage.DeleteCategory(ctx, category.ID); err != nil {
		return nil, mapStorageErr(lg, op, "DeleteCategory", err)
	}

	s.invalidate(ctx, lg, cache.KeyCategories, cache.KeyNews)

	lg.Info("category deleted", "deleted_news", len(deleted), "asset", assetRes.Result)

	return &models.DeleteCategoryResult{
		Category:    *category,
		Asset:       assetRes,
		DeletedNews: len(deleted),
	}, nil
}
