// storage описывает контракты хранилищ panel-service:
//   - Storage: документное хранилище сущностей (MongoDB);
//   - AssetStorage: хранилище изображений (MinIO/S3).
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-news-panel/internal/models"
)

var (
	// ErrNotFound: сущность отсутствует в хранилище (в т.ч. при битом идентификаторе).
	ErrNotFound = errors.New("not found")
	// ErrConflict: нарушение уникальности (username, news.link).
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument: недопустимые входные данные (тип/размер файла, вид сущности).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UsersStorage: учётные записи.
type UsersStorage interface {
	// CreateUser сохраняет пользователя и возвращает его с присвоенным ID.
	// Занятый username: ErrConflict.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UserByID: ErrNotFound, если записи нет.
	UserByID(ctx context.Context, id string) (*models.User, error)
	// UserByUsername: ErrNotFound, если записи нет.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UsersByIDs возвращает найденных пользователей; отсутствующие id пропускаются.
	UsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PanelsStorage: агрегаты PanelData и их наборы членства.
type PanelsStorage interface {
	// CreatePanel создаёт пустую панель.
	CreatePanel(ctx context.Context) (*models.Panel, error)
	// PanelByID: ErrNotFound, если панели нет.
	PanelByID(ctx context.Context, id string) (*models.Panel, error)
	// DeletePanel удаляет панель; ErrNotFound, если её нет.
	DeletePanel(ctx context.Context, id string) error
	// AddMember добавляет entityID в набор kind без дубликатов ($addToSet).
	// Для KindLogo выставляет единственную ссылку.
	AddMember(ctx context.Context, panelID string, kind models.EntityKind, entityID string) error
	// RemoveMember убирает entityID из набора kind ($pull); отсутствующий id: no-op.
	RemoveMember(ctx context.Context, panelID string, kind models.EntityKind, entityID string) error
	// RemoveMemberEverywhere убирает ids из набора kind во всех панелях.
	RemoveMemberEverywhere(ctx context.Context, kind models.EntityKind, ids []string) error
}

// CategoriesStorage: рубрики.
type CategoriesStorage interface {
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	CategoryByID(ctx context.Context, id string) (*models.Category, error)
	// CategoryByName возвращает первую рубрику с точным совпадением имени.
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	CategoriesByIDs(ctx context.Context, ids []string) ([]models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	// UpdateCategory перезаписывает name/image; ErrNotFound, если записи нет.
	UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// NewsStorage: новости. Уникальность link обеспечивается индексом.
type NewsStorage interface {
	// CreateNews: ErrConflict при совпадении link.
	CreateNews(ctx context.Context, news models.News) (*models.News, error)
	NewsByID(ctx context.Context, id string) (*models.News, error)
	NewsByLink(ctx context.Context, link string) (*models.News, error)
	// NewsByIDs: сортировка: сначала новые.
	NewsByIDs(ctx context.Context, ids []string) ([]models.News, error)
	// ListNews: все новости, сначала новые.
	ListNews(ctx context.Context) ([]models.News, error)
	// UpdateNews: ErrConflict при совпадении link, ErrNotFound при отсутствии записи.
	UpdateNews(ctx context.Context, news models.News) (*models.News, error)
	DeleteNews(ctx context.Context, id string) error
	// DeleteNewsByCategory удаляет все новости рубрики и возвращает удалённые записи.
	DeleteNewsByCategory(ctx context.Context, categoryID string) ([]models.News, error)
}

// BannersStorage: баннеры.
type BannersStorage interface {
	CreateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error)
	BannerByID(ctx context.Context, id string) (*models.Banner, error)
	BannersByIDs(ctx context.Context, ids []string) ([]models.Banner, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	UpdateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
}

// LogosStorage: логотипы.
type LogosStorage interface {
	CreateLogo(ctx context.Context, logo models.Logo) (*models.Logo, error)
	LogoByID(ctx context.Context, id string) (*models.Logo, error)
	ListLogos(ctx context.Context) ([]models.Logo, error)
	UpdateLogo(ctx context.Context, logo models.Logo) (*models.Logo, error)
	DeleteLogo(ctx context.Context, id string) error
}

// Storage: полный контракт документного хранилища.
type Storage interface {
	UsersStorage
	PanelsStorage
	CategoriesStorage
	NewsStorage
	BannersStorage
	LogosStorage

	// Close закрывает соединения хранилища.
	Close(ctx context.Context) error
}

// Каталоги изображений в бакете.
const (
	FolderCategories = "categories"
	FolderNews       = "news_images"
	FolderBanner     = "banner"
	FolderLogo       = "logo"
)

// AssetStorage: хранилище изображений.
type AssetStorage interface {
	// Upload сохраняет файл в каталоге folder и возвращает его адрес и идентификатор.
	// Недопустимый тип или размер: ErrInvalidArgument.
	Upload(ctx context.Context, folder string, file models.Upload) (models.Asset, error)
	// Destroy удаляет изображение по идентификатору; отсутствующий объект: ErrNotFound.
	Destroy(ctx context.Context, assetID string) error
}
