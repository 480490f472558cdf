package models

import (
	"io"
	"time"
)

// User: учётная запись владельца панели.
// PanelID выставляется один раз при регистрации.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	PanelID      string
	CreatedAt    time.Time
}

// Asset: изображение во внешнем хранилище.
// ID: непрозрачный идентификатор для удаления (ключ объекта).
type Asset struct {
	URL string
	ID  string
}

// IsZero сообщает, что изображение отсутствует.
func (a Asset) IsZero() bool { return a.ID == "" && a.URL == "" }

// Upload: входящий файл для загрузки в хранилище изображений.
type Upload struct {
	Data        io.Reader
	Size        int64
	ContentType string
}

// Category: рубрика новостей.
type Category struct {
	ID        string
	Name      string
	Image     Asset
	CreatedAt time.Time
	UpdatedAt time.Time
}

// News: новостная статья. Link: уникальный slug от Title.
type News struct {
	ID         string
	Title      string
	Content    string
	Link       string
	Image      Asset
	AuthorID   string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Banner: рекламный баннер. Link: адрес перехода, а не slug.
type Banner struct {
	ID        string
	Image     Asset
	Link      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Logo: логотип панели.
type Logo struct {
	ID        string
	Image     Asset
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryRef: разрешённая ссылка на рубрику (только имя).
type CategoryRef struct {
	ID   string
	Name string
}

// AuthorRef: разрешённая ссылка на автора.
type AuthorRef struct {
	ID       string
	Username string
}

// NewsView: новость с разрешёнными рубрикой и автором.
// Category/Author равны nil, если ссылка пуста или сущность уже удалена.
type NewsView struct {
	News
	Category *CategoryRef
	Author   *AuthorRef
}

// Результат удаления изображения во внешнем хранилище.
const (
	AssetOK       = "ok"
	AssetNotFound = "not_found"
	AssetSkipped  = "skipped"
	AssetFailed   = "failed"
)

// AssetResult: итог удаления изображения сущности.
type AssetResult struct {
	ID     string
	Result string
}

// DeleteCategoryResult: удалённая рубрика и итог очистки её изображения.
type DeleteCategoryResult struct {
	Category    Category
	Asset       AssetResult
	DeletedNews int
}
