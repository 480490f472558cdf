package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-news-panel/internal/http/middleware"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

// Service: операции бизнес-слоя, которые обслуживают хендлеры.
// Реализуется *service.Service.
type Service interface {
	Signup(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
	LoginDetails(ctx context.Context) ([]models.User, error)

	CreateCategory(ctx context.Context, userID string, input service.CreateCategoryInput) (*models.Category, error)
	Category(ctx context.Context, userID, id string) (*models.Category, error)
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	UpdateCategory(ctx context.Context, userID, id string, input service.UpdateCategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) (*models.DeleteCategoryResult, error)

	CreateNews(ctx context.Context, userID string, input service.CreateNewsInput) (*models.NewsView, error)
	News(ctx context.Context, userID, id string) (*models.NewsView, error)
	ListNews(ctx context.Context, userID string) ([]models.NewsView, error)
	UpdateNews(ctx context.Context, userID, id string, input service.UpdateNewsInput) (*models.NewsView, error)
	DeleteNews(ctx context.Context, userID, id string) (*models.AssetResult, error)

	CreateBanner(ctx context.Context, userID string, input service.CreateBannerInput) (*models.Banner, error)
	ListBanners(ctx context.Context, userID string) ([]models.Banner, error)
	UpdateBanner(ctx context.Context, userID, id string, input service.UpdateBannerInput) (*models.Banner, error)
	DeleteBanner(ctx context.Context, userID, id string) (*models.AssetResult, error)

	Logo(ctx context.Context, userID string) (*models.Logo, error)
	CreateLogo(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error)
	SetLogo(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error)
	DeleteLogo(ctx context.Context, userID string) (*models.AssetResult, error)

	PublicNews(ctx context.Context) ([]models.NewsView, error)
	PublicCategories(ctx context.Context) ([]models.Category, error)
	PublicBanners(ctx context.Context) ([]models.Banner, error)
	PublicLogos(ctx context.Context) ([]models.Logo, error)
	NewsByLink(ctx context.Context, link string) (*models.NewsView, error)
}

var _ Service = (*service.Service)(nil)

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	svc Service
	// maxUpload: предел тела multipart-запроса в байтах.
	maxUpload int64
}

// New создаёт хендлеры. maxUpload <= 0 означает defaultMaxUpload.
func New(svc Service, maxUpload int64) *Handlers {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}

	return &Handlers{svc: svc, maxUpload: maxUpload}
}

// writeJSON: единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict: строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// userID достаёт id пользователя, положенный middleware.RequireAuth.
func userID(r *http.Request) (string, error) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		return "", service.ErrUnauthenticated
	}
	return id, nil
}
