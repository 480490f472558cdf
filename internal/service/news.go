package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-news-panel/internal/cache"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/pribylovaa/go-news-panel/pkg/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Входные структуры новостей.
type CreateNewsInput struct {
	Title   string
	Content string
	// Category: идентификатор или имя рубрики панели.
	Category string
	Image    *models.Upload
}

type UpdateNewsInput struct {
	Title    *string
	Content  *string
	Category *string
	Image    *models.Upload
}

// CreateNews публикует новость в панели пользователя.
//
// Поведение:
//   - title, content и category обязательны;
//   - рубрика должна принадлежать панели (см. resolveCategory);
//   - link = Slug(title), совпадение link: ErrConflict, загруженное изображение освобождается;
//   - при сбое членства запись удаляется (компенсация).
func (s *Service) CreateNews(ctx context.Context, userID string, input CreateNewsInput) (*models.NewsView, error) {
	const op = "service/news/CreateNews"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	categoryRef := strings.TrimSpace(input.Category)

	if title == "" || content == "" || categoryRef == "" {
		lg.Warn("invalid argument: title, content and category are required")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	link := Slug(title)
	if link == "" {
		lg.Warn("invalid argument: title has no sluggable characters")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, panel, err := s.resolveOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	category, err := s.resolveCategory(ctx, lg, panel, categoryRef)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	image, err := s.uploadAsset(ctx, lg, op, storage.FolderNews, input.Image)
	if err != nil {
		return nil, err
	}

	news, err := s.storage.CreateNews(ctx, models.News{
		Title:      title,
		Content:    content,
		Link:       link,
		Image:      image,
		AuthorID:   userID,
		CategoryID: category.ID,
	})
	if err != nil {
		s.destroyAsset(ctx, lg, image)

		return nil, mapStorageErr(lg, op, "CreateNews", err)
	}

	if err := s.addMember(ctx, panel, models.KindNews, news.ID); err != nil {
		s.compensateCreate(ctx, lg, news.ID, image, s.storage.DeleteNews)

		return nil, mapStorageErr(lg, op, "AddMember", err)
	}

	s.invalidate(ctx, lg, cache.KeyNews)

	lg.Info("news created", "news_id", news.ID, "link", news.Link)

	return &models.NewsView{
		News:     *news,
		Category: &models.CategoryRef{ID: category.ID, Name: category.Name},
		Author:   &models.AuthorRef{ID: user.ID, Username: user.Username},
	}, nil
}

// News возвращает новость панели с разрешёнными ссылками. Сначала NotFound, затем Forbidden.
func (s *Service) News(ctx context.Context, userID, id string) (*models.NewsView, error) {
	const op = "service/news/News"

	lg := log.From(ctx).With("op", op, "user_id", userID, "news_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	news, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "NewsByID", err)
	}

	if err := assertMember(panel, models.KindNews, news.ID); err != nil {
		lg.Warn("news of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views, err := s.newsViews(ctx, lg, op, []models.News{*news})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// ListNews возвращает новости панели, сначала новые.
func (s *Service) ListNews(ctx context.Context, userID string) ([]models.NewsView, error) {
	const op = "service/news/ListNews"

	lg := log.From(ctx).With("op", op, "user_id", userID)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.storage.NewsByIDs(ctx, panel.News)
	if err != nil {
		return nil, mapStorageErr(lg, op, "NewsByIDs", err)
	}

	return s.newsViews(ctx, lg, op, items)
}

// UpdateNews частично обновляет новость панели.
//
// Поведение:
//   - отсутствующая новость: ErrNotFound, чужая: ErrForbidden;
//   - смена рубрики проходит через resolveCategory;
//   - смена заголовка пересчитывает link;
//   - новое изображение сохраняется, затем старое освобождается.
func (s *Service) UpdateNews(ctx context.Context, userID, id string, input UpdateNewsInput) (*models.NewsView, error) {
	const op = "service/news/UpdateNews"

	lg := log.From(ctx).With("op", op, "user_id", userID, "news_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	news, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "NewsByID", err)
	}

	if err := assertMember(panel, models.KindNews, news.ID); err != nil {
		lg.Warn("news of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Title == nil && input.Content == nil && input.Category == nil && input.Image == nil {
		lg.Warn("invalid argument: empty update")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	next := *news

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		link := Slug(title)
		if title == "" || link == "" {
			lg.Warn("invalid argument: bad title")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		next.Title, next.Link = title, link
	}

	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			lg.Warn("invalid argument: empty content")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		next.Content = content
	}

	if input.Category != nil {
		category, err := s.resolveCategory(ctx, lg, panel, strings.TrimSpace(*input.Category))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		next.CategoryID = category.ID
	}

	if input.Image != nil {
		next.Image, err = s.uploadAsset(ctx, lg, op, storage.FolderNews, input.Image)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.storage.UpdateNews(ctx, next)
	if err != nil {
		if input.Image != nil {
			s.destroyAsset(ctx, lg, next.Image)
		}

		return nil, mapStorageErr(lg, op, "UpdateNews", err)
	}

	if input.Image != nil {
		s.destroyAsset(ctx, lg, news.Image)
	}

	s.invalidate(ctx, lg, cache.KeyNews)

	views, err := s.newsViews(ctx, lg, op, []models.News{*updated})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// DeleteNews удаляет новость панели вместе с изображением и членством.
func (s *Service) DeleteNews(ctx context.Context, userID, id string) (*models.AssetResult, error) {
	const op = "service/news/DeleteNews"

	lg := log.From(ctx).With("op", op, "user_id", userID, "news_id", id)

	panel, err := s.resolvePanel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	news, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, "NewsByID", err)
	}

	if err := assertMember(panel, models.KindNews, news.ID); err != nil {
		lg.Warn("news of another panel")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := s.destroyAsset(ctx, lg, news.Image)

	if err := s.removeMember(ctx, panel, models.KindNews, news.ID); err != nil {
		return nil, mapStorageErr(lg, op, "RemoveMember", err)
	}

	if err := s.storage.DeleteNews(ctx, news.ID); err != nil {
		return nil, mapStorageErr(lg, op, "DeleteNews", err)
	}

	s.invalidate(ctx, lg, cache.KeyNews)

	lg.Info("news deleted", "asset", res.Result)

	return &res, nil
}

// resolveCategory находит рубрику панели по идентификатору или имени:
//   - id из набора панели используется напрямую;
//   - иначе ищется рубрика панели с таким именем;
//   - найденная вне панели рубрика: ErrForbidden;
//   - не найденная нигде: ErrNotFound.
func (s *Service) resolveCategory(ctx context.Context, lg *slog.Logger, panel *models.Panel, ref string) (*models.Category, error) {
	const op = "service/news/resolveCategory"

	if ref == "" {
		lg.Warn("invalid argument: empty category")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if primitive.IsValidObjectID(ref) && panel.Has(models.KindCategory, ref) {
		category, err := s.storage.CategoryByID(ctx, ref)
		if err != nil {
			return nil, mapStorageErr(lg, op, "CategoryByID", err)
		}

		return category, nil
	}

	own, err := s.storage.CategoriesByIDs(ctx, panel.Categories)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoriesByIDs", err)
	}

	for i := range own {
		if own[i].Name == ref {
			return &own[i], nil
		}
	}

	if primitive.IsValidObjectID(ref) {
		if _, err := s.storage.CategoryByID(ctx, ref); err == nil {
			lg.Warn("category of another panel", "category", ref)

			return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, mapStorageErr(lg, op, "CategoryByID", err)
		}
	}

	if _, err := s.storage.CategoryByName(ctx, ref); err == nil {
		lg.Warn("category of another panel", "category", ref)

		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapStorageErr(lg, op, "CategoryByName", err)
	}

	lg.Warn("category not found", "category", ref)

	return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
}

// newsViews разрешает рубрики и авторов одним пакетным запросом на каждый вид.
func (s *Service) newsViews(ctx context.Context, lg *slog.Logger, op string, items []models.News) ([]models.NewsView, error) {
	if len(items) == 0 {
		return []models.NewsView{}, nil
	}

	categoryIDs := make([]string, 0, len(items))
	authorIDs := make([]string, 0, len(items))
	for _, n := range items {
		categoryIDs = append(categoryIDs, n.CategoryID)
		if n.AuthorID != "" {
			authorIDs = append(authorIDs, n.AuthorID)
		}
	}

	categories, err := s.storage.CategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, mapStorageErr(lg, op, "CategoriesByIDs", err)
	}

	authors, err := s.storage.UsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, mapStorageErr(lg, op, "UsersByIDs", err)
	}

	categoryByID := make(map[string]*models.CategoryRef, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = &models.CategoryRef{ID: c.ID, Name: c.Name}
	}

	authorByID := make(map[string]*models.AuthorRef, len(authors))
	for _, u := range authors {
		authorByID[u.ID] = &models.AuthorRef{ID: u.ID, Username: u.Username}
	}

	out := make([]models.NewsView, 0, len(items))
	for _, n := range items {
		out = append(out, models.NewsView{
			News:     n,
			Category: categoryByID[n.CategoryID],
			Author:   authorByID[n.AuthorID],
		})
	}

	return out, nil
}
