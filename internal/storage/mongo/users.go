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

// CreateUser сохраняет пользователя. Занятый username: storage.ErrConflict (уникальный индекс).
func (m *Mongo) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage/mongo/CreateUser"

	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now(),
	}

	if user.PanelID != "" {
		panelOID, err := toOID(user.PanelID)
		if err != nil {
			return nil, fmt.Errorf("%s: panel: %w", op, storage.ErrInvalidArgument)
		}
		doc.PanelID = panelOID
	}

	res, err := m.users.InsertOne(ctx, doc)
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
	out := userFromDoc(doc)

	return &out, nil
}

// UserByID возвращает пользователя; storage.ErrNotFound, если его нет.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.findUser(ctx, op, bson.D{{Key: "_id", Value: oid}})
}

// UserByUsername возвращает пользователя по точному совпадению имени.
func (m *Mongo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/mongo/UserByUsername"

	return m.findUser(ctx, op, bson.D{{Key: "username", Value: username}})
}

// UsersByIDs возвращает найденных пользователей; отсутствующие id пропускаются.
func (m *Mongo) UsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	const op = "storage/mongo/UsersByIDs"

	oids := toOIDs(ids)
	if len(oids) == 0 {
		return []models.User{}, nil
	}

	cur, err := m.users.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, userFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListUsers возвращает всех пользователей в порядке регистрации.
func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage/mongo/ListUsers"

	cur, err := m.users.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	out, err := decodeAll(ctx, cur, userFromDoc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (m *Mongo) findUser(ctx context.Context, op string, filter bson.D) (*models.User, error) {
	var doc userDoc
	if err := m.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := userFromDoc(doc)

	return &out, nil
}
