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

// Входные структуры рубрик.
type CreateCategoryInput struct {
	Name  string
	Image *models.Upload
}

// UpdateCategoryInput: частичное обновление: меняются только заданные поля.
type UpdateCategoryInput struct {
	Name  *string
	Image *models.Upload
}

// CreateCategory создаёт рубрику в панели пользователя.
//
// Поведение:
//   - имя обязательно (после TrimSpace);
//   - изображение загружается в каталог categories, затем создаётся запись и членство;
//   - при сбое членства запись удаляется, изображение освобождается.
func (s *Service) CreateCategory(ctx context.Context, userID string, input CreateCategoryInput) (*models.Category, error) {
	const op = "service/categories/CreateCategory"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		lg.Warn("invalid argument: empty name")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	image, err := s.uploadAsset(ctx, lg, op, storage.FolderCategories, input.Image)
	if err != nil {
		return nil, err
	}

	category, err := s.storage.CreateCategory(ctx, models.Category{Name: name, Image: image})
	if err != nil {
		s.destroyAsset(ctx, lg, image)

		return nil, mapStorageErr(lg, op, "CreateCategory", err)
	}

	if err := s.addMember(ctx, panel, models.KindCategory, category.ID); err != nil {
		s.compensateCreate(ctx, lg, category.ID, image, s.storage.DeleteCategory)

		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyCategories)

	lg.Info("category created", "category_id", category.ID)

	return category, nil
}

// Category возвращает рубрику панели. Сначала NotFound, затем Forbidden.
func (s *Service) Category(ctx context.Context, userID, id string) (*models.Category, error) {
	const op = "service/categories/Category"

	lg := log.From(ctx).With("op", op, "user_id", userID, "category_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoryByID", err)
	}

	if err := assertMember(panel, models.KindCategory, category.ID); err != nil {
		lg.Warn("category of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

// ListCategories возвращает рубрики панели пользователя.
func (s *Service) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	const op = "service/categories/ListCategories"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := s.storage.CategoriesByIDs(ctx, panel.Categories)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoriesByIDs", err)
	}

	return out, nil
}

// UpdateCategory частично обновляет рубрику панели.
//
// Поведение:
//   - отсутствующая рубрика: ErrNotFound, чужая: ErrForbidden;
//   - пустой патч или пустое имя: ErrInvalidArgument;
//   - новое изображение сохраняется, затем старое освобождается;
//   - членство подтверждается повторно (идемпотентно).
func (s *Service) UpdateCategory(ctx context.Context, userID, id string, input UpdateCategoryInput) (*models.Category, error) {
	const op = "service/categories/UpdateCategory"

	lg := log.From(ctx).With("op", op, "user_id", userID, "category_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoryByID", err)
	}

	if err := assertMember(panel, models.KindCategory, category.ID); err != nil {
		lg.Warn("category of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Name == nil && input.Image == nil {
		lg.Warn("invalid argument: empty update")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	next := *category

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			lg.Warn("invalid argument: empty name")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		next.Name = name
	}

	if input.Image != nil {
		next.Image, err = s.uploadAsset(ctx, lg, op, storage.FolderCategories, input.Image)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.storage.UpdateCategory(ctx, next)
	if err != nil {
		if input.Image != nil {
			s.destroyAsset(ctx, lg, next.Image)
		}

		return nil, mapStorageErr(lg, op, "UpdateCategory", err)
	}

	if input.Image != nil {
		s.destroyAsset(ctx, lg, category.Image)
	}

	if err := s.addMember(ctx, panel, models.KindCategory, updated.ID); err != nil {
		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyCategories, cache.KeyNews)

	return updated, nil
}

// DeleteCategory удаляет рубрику панели каскадом вместе с её новостями.
// Повторное удаление: ErrNotFound.
func (s *Service) DeleteCategory(ctx context.Context, userID, id string) (*models.DeleteCategoryResult, error) {
	const op = "service/categories/DeleteCategory"

	lg := log.From(ctx).With("op", op, "user_id", userID, "category_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category, err := s.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoryByID", err)
	}

	if err := assertMember(panel, models.KindCategory, category.ID); err != nil {
		lg.Warn("category of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.cascadeDeleteCategory(ctx, panel, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}
