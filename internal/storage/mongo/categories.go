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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCategory сохраняет рубрику.
func (m *Mongo) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	const op = "storage/mongo/CreateCategory"

	ts := now()
	doc := categoryDoc{
		Name:      category.Name,
		Image:     toAssetDoc(category.Image),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	res, err := m.categories.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := categoryFromDoc(doc)

	return &out, nil
}

// CategoryByID возвращает рубрику; storage.ErrNotFound, если её нет.
func (m *Mongo) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	const op = "storage/mongo/CategoryByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.findCategory(ctx, op, bson.D{{Key: "_id", Value: oid}})
}

// CategoryByName возвращает самую раннюю рубрику с точным совпадением имени.
func (m *Mongo) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	const op = "storage/mongo/CategoryByName"

	return m.findCategory(ctx, op, bson.D{{Key: "name", Value: name}})
}

// CategoriesByIDs возвращает найденные рубрики в порядке создания.
func (m *Mongo) CategoriesByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	const op = "storage/mongo/CategoriesByIDs"

	oids := toOIDs(ids)
	if len(oids) == 0 {
		return []models.Category{}, nil
	}

	return m.listCategories(ctx, op, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

// ListCategories возвращает все рубрики в порядке создания.
func (m *Mongo) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "storage/mongo/ListCategories"

	return m.listCategories(ctx, op, bson.D{})
}

// UpdateCategory перезаписывает имя и изображение рубрики.
func (m *Mongo) UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	const op = "storage/mongo/UpdateCategory"

	oid, err := toOID(category.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	update := withImage(bson.D{
		{Key: "name", Value: category.Name},
		{Key: "updated_at", Value: now()},
	}, category.Image)

	var doc categoryDoc
	if err := m.categories.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := categoryFromDoc(doc)

	return &out, nil
}

// DeleteCategory удаляет рубрику. Каскад по новостям выполняет сервисный слой.
func (m *Mongo) DeleteCategory(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteCategory"

	return m.deleteByID(ctx, op, m.categories, id)
}

func (m *Mongo) findCategory(ctx context.Context, op string, filter bson.D) (*models.Category, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	var doc categoryDoc
	if err := m.categories.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := categoryFromDoc(doc)

	return &out, nil
}

func (m *Mongo) listCategories(ctx context.Context, op string, filter bson.D) ([]models.Category, error) {
	cur, err := m.categories.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, categoryFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
