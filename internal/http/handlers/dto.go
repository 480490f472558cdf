package handlers

import (
	"time"

	"github.com/pribylovaa/go-news-panel/internal/models"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PanelID   string    `json:"panel_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type PanelResponse struct {
	ID         string   `json:"id"`
	Categories []string `json:"categories"`
	Banners    []string `json:"banners"`
	News       []string `json:"news"`
	Logo       string   `json:"logo,omitempty"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      UserResponse  `json:"user"`
	Panel     PanelResponse `json:"panel"`
}

type LoginDetailsResponse struct {
	Users []UserResponse `json:"users"`
}

type Image struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     *Image    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type News struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Link      string       `json:"link"`
	Image     *Image       `json:"image,omitempty"`
	Category  *CategoryRef `json:"category"`
	Author    *AuthorRef   `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Banner struct {
	ID        string    `json:"id"`
	Link      string    `json:"link"`
	Image     *Image    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Logo struct {
	ID        string    `json:"id"`
	Image     *Image    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AssetResult struct {
	ID     string `json:"id,omitempty"`
	Result string `json:"result"`
}

type DeleteCategoryResponse struct {
	Category    Category    `json:"category"`
	Asset       AssetResult `json:"asset"`
	DeletedNews int         `json:"deleted_news"`
}

type DeleteResponse struct {
	Asset AssetResult `json:"asset"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func imageFromModel(a models.Asset) *Image {
	if a.IsZero() {
		return nil
	}
	return &Image{URL: a.URL, ID: a.ID}
}

func UserFromModel(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		PanelID:   u.PanelID,
		CreatedAt: u.CreatedAt,
	}
}

func PanelFromModel(p models.Panel) PanelResponse {
	return PanelResponse{
		ID:         p.ID,
		Categories: nonNil(p.Categories),
		Banners:    nonNil(p.Banners),
		News:       nonNil(p.News),
		Logo:       p.Logo,
	}
}

func CategoryFromModel(c models.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Image:     imageFromModel(c.Image),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewsFromModel(v models.NewsView) News {
	out := News{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		Link:      v.Link,
		Image:     imageFromModel(v.Image),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}

	if v.Category != nil {
		out.Category = &CategoryRef{ID: v.Category.ID, Name: v.Category.Name}
	}

	if v.Author != nil {
		out.Author = &AuthorRef{ID: v.Author.ID, Username: v.Author.Username}
	}

	return out
}

func BannerFromModel(b models.Banner) Banner {
	return Banner{
		ID:        b.ID,
		Link:      b.Link,
		Image:     imageFromModel(b.Image),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func LogoFromModel(l models.Logo) Logo {
	return Logo{
		ID:        l.ID,
		Image:     imageFromModel(l.Image),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func AssetResultFromModel(a models.AssetResult) AssetResult {
	return AssetResult{ID: a.ID, Result: a.Result}
}

// listOf конвертирует слайс моделей; пустой результат отдаётся как [] вместо null.
func listOf[M, T any](items []M, conv func(M) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return ListResponse[T]{Items: out}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
