// Package models содержит доменные сущности panel-service.
//
// Идентификаторы: hex-представление MongoDB ObjectID. Ссылки между сущностями
// хранятся как типизированные поля-идентификаторы и разрешаются сервисным слоем явно.
package models

import (
	"slices"
	"time"
)

// EntityKind: вид сущности, членство которой хранит панель.
type EntityKind string

const (
	KindCategory EntityKind = "category"
	KindBanner   EntityKind = "banner"
	KindNews     EntityKind = "news"
	KindLogo     EntityKind = "logo"
)

// Panel: агрегат PanelData: набор сущностей, принадлежащих одному пользователю.
// Присутствие id в соответствующем наборе и есть право на изменение сущности.
// Логотип: единственная необязательная ссылка.
type Panel struct {
	ID         string
	Categories []string
	Banners    []string
	News       []string
	Logo       string
	CreatedAt  time.Time
}

// Members возвращает идентификаторы сущностей вида kind.
func (p *Panel) Members(kind EntityKind) []string {
	switch kind {
	case KindCategory:
		return p.Categories
	case KindBanner:
		return p.Banners
	case KindNews:
		return p.News
	case KindLogo:
		if p.Logo == "" {
			return nil
		}
		return []string{p.Logo}
	default:
		return nil
	}
}

// Has сообщает, принадлежит ли сущность id панели.
func (p *Panel) Has(kind EntityKind, id string) bool {
	if id == "" {
		return false
	}

	return slices.Contains(p.Members(kind), id)
}

// Add добавляет id в набор kind (без дубликатов). Для логотипа заменяет ссылку.
func (p *Panel) Add(kind EntityKind, id string) {
	if id == "" || p.Has(kind, id) {
		return
	}

	switch kind {
	case KindCategory:
		p.Categories = append(p.Categories, id)
	case KindBanner:
		p.Banners = append(p.Banners, id)
	case KindNews:
		p.News = append(p.News, id)
	case KindLogo:
		p.Logo = id
	}
}

// Remove убирает id из набора kind; отсутствующий id: no-op.
func (p *Panel) Remove(kind EntityKind, id string) {
	drop := func(ids []string) []string {
		return slices.DeleteFunc(ids, func(v string) bool { return v == id })
	}

	switch kind {
	case KindCategory:
		p.Categories = drop(p.Categories)
	case KindBanner:
		p.Banners = drop(p.Banners)
	case KindNews:
		p.News = drop(p.News)
	case KindLogo:
		if p.Logo == id {
			p.Logo = ""
		}
	}
}

// Valid сообщает, известен ли вид сущности.
func (k EntityKind) Valid() bool {
	switch k {
	case KindCategory, KindBanner, KindNews, KindLogo:
		return true
	default:
		return false
	}
}
