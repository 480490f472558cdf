package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// CreateNews сохраняет новость. Совпадение link: storage.ErrConflict (уникальный индекс).
func (m *Mongo) CreateNews(ctx context.Context, news models.News) (*models.News, error) {
	const op = "storage/mongo/CreateNews"

	categoryOID, err := toOID(news.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: category: %w", op, storage.ErrInvalidArgument)
	}

	ts := now()
	doc := newsDoc{
		Title:      news.Title,
		Content:    news.Content,
		Link:       news.Link,
		Image:      toAssetDoc(news.Image),
		CategoryID: categoryOID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	if news.AuthorID != "" {
		if authorOID, err := toOID(news.AuthorID); err == nil {
			doc.AuthorID = authorOID
		}
	}

	res, err := m.news.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := newsFromDoc(doc)

	return &out, nil
}

// NewsByID возвращает новость; storage.ErrNotFound, если её нет.
func (m *Mongo) NewsByID(ctx context.Context, id string) (*models.News, error) {
	const op = "storage/mongo/NewsByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.findNews(ctx, op, bson.D{{Key: "_id", Value: oid}})
}

// NewsByLink ищет новость по точному совпадению link.
func (m *Mongo) NewsByLink(ctx context.Context, link string) (*models.News, error) {
	const op = "storage/mongo/NewsByLink"

	return m.findNews(ctx, op, bson.D{{Key: "link", Value: link}})
}

// NewsByIDs возвращает найденные новости, сначала новые.
func (m *Mongo) NewsByIDs(ctx context.Context, ids []string) ([]models.News, error) {
	const op = "storage/mongo/NewsByIDs"

	oids := toOIDs(ids)
	if len(oids) == 0 {
		return []models.News{}, nil
	}

	return m.listNews(ctx, op, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

// ListNews возвращает все новости, сначала новые.
func (m *Mongo) ListNews(ctx context.Context) ([]models.News, error) {
	const op = "storage/mongo/ListNews"

	return m.listNews(ctx, op, bson.D{})
}

// UpdateNews перезаписывает изменяемые поля новости.
// Совпадение link с другой новостью: storage.ErrConflict.
func (m *Mongo) UpdateNews(ctx context.Context, news models.News) (*models.News, error) {
	const op = "storage/mongo/UpdateNews"

	oid, err := toOID(news.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categoryOID, err := toOID(news.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: category: %w", op, storage.ErrInvalidArgument)
	}

	update := withImage(bson.D{
		{Key: "title", Value: news.Title},
		{Key: "content", Value: news.Content},
		{Key: "link", Value: news.Link},
		{Key: "category_id", Value: categoryOID},
		{Key: "updated_at", Value: now()},
	}, news.Image)

	var doc newsDoc
	if err := m.news.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, afterUpdate()).Decode(&doc); err != nil {
		switch {
		case errors.Is(err, mongodriver.ErrNoDocuments):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		case mongodriver.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	out := newsFromDoc(doc)

	return &out, nil
}

// DeleteNews удаляет новость.
func (m *Mongo) DeleteNews(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteNews"

	return m.deleteByID(ctx, op, m.news, id)
}

// DeleteNewsByCategory удаляет все новости рубрики (глобально, без привязки к панели)
// и возвращает удалённые записи, чтобы вызывающий мог освободить их изображения и членство.
func (m *Mongo) DeleteNewsByCategory(ctx context.Context, categoryID string) ([]models.News, error) {
	const op = "storage/mongo/DeleteNewsByCategory"

	categoryOID, err := toOID(categoryID)
	if err != nil {
		return []models.News{}, nil
	}

	filter := bson.D{{Key: "category_id", Value: categoryOID}}

	items, err := m.listNews(ctx, op, filter)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return items, nil
	}

	if _, err := m.news.DeleteMany(ctx, filter); err != nil {
		return nil, fmt.Errorf("%s: delete: %w", op, err)
	}

	return items, nil
}

func (m *Mongo) findNews(ctx context.Context, op string, filter bson.D) (*models.News, error) {
	var doc newsDoc
	if err := m.news.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := newsFromDoc(doc)

	return &out, nil
}

func (m *Mongo) listNews(ctx context.Context, op string, filter bson.D) ([]models.News, error) {
	cur, err := m.news.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, newsFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
