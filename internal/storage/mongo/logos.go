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

func (m *Mongo) CreateLogo(ctx context.Context, logo models.Logo) (*models.Logo, error) {
	const op = "storage/mongo/CreateLogo"

	ts := now()
	doc := logoDoc{
		Image:     toAssetDoc(logo.Image),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	res, err := m.logos.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := logoFromDoc(doc)

	return &out, nil
}

func (m *Mongo) LogoByID(ctx context.Context, id string) (*models.Logo, error) {
	const op = "storage/mongo/LogoByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc logoDoc
	if err := m.logos.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := logoFromDoc(doc)

	return &out, nil
}

// ListLogos возвращает логотипы всех панелей, сначала новые.
func (m *Mongo) ListLogos(ctx context.Context) ([]models.Logo, error) {
	const op = "storage/mongo/ListLogos"

	cur, err := m.logos.Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, logoFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateLogo перезаписывает изображение логотипа на месте.
func (m *Mongo) UpdateLogo(ctx context.Context, logo models.Logo) (*models.Logo, error) {
	const op = "storage/mongo/UpdateLogo"

	oid, err := toOID(logo.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	update := withImage(bson.D{{Key: "updated_at", Value: now()}}, logo.Image)

	var doc logoDoc
	if err := m.logos.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := logoFromDoc(doc)

	return &out, nil
}

func (m *Mongo) DeleteLogo(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteLogo"

	return m.deleteByID(ctx, op, m.logos, id)
}
