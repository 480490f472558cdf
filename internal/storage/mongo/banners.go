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

func (m *Mongo) CreateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error) {
	const op = "storage/mongo/CreateBanner"

	ts := now()
	doc := bannerDoc{
		Image:     toAssetDoc(banner.Image),
		Link:      banner.Link,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	res, err := m.banners.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := bannerFromDoc(doc)

	return &out, nil
}

func (m *Mongo) BannerByID(ctx context.Context, id string) (*models.Banner, error) {
	const op = "storage/mongo/BannerByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc bannerDoc
	if err := m.banners.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := bannerFromDoc(doc)

	return &out, nil
}

func (m *Mongo) BannersByIDs(ctx context.Context, ids []string) ([]models.Banner, error) {
	const op = "storage/mongo/BannersByIDs"

	oids := toOIDs(ids)
	if len(oids) == 0 {
		return []models.Banner{}, nil
	}

	return m.listBanners(ctx, op, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

func (m *Mongo) ListBanners(ctx context.Context) ([]models.Banner, error) {
	const op = "storage/mongo/ListBanners"

	return m.listBanners(ctx, op, bson.D{})
}

func (m *Mongo) UpdateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error) {
	const op = "storage/mongo/UpdateBanner"

	oid, err := toOID(banner.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	update := withImage(bson.D{
		{Key: "link", Value: banner.Link},
		{Key: "updated_at", Value: now()},
	}, banner.Image)

	var doc bannerDoc
	if err := m.banners.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := bannerFromDoc(doc)

	return &out, nil
}

func (m *Mongo) DeleteBanner(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteBanner"

	return m.deleteByID(ctx, op, m.banners, id)
}

func (m *Mongo) listBanners(ctx context.Context, op string, filter bson.D) ([]models.Banner, error) {
	cur, err := m.banners.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, bannerFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
