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

// CreatePanel создаёт пустую панель с пустыми (не null) наборами.
func (m *Mongo) CreatePanel(ctx context.Context) (*models.Panel, error) {
	const op = "storage/mongo/CreatePanel"

	doc := panelDoc{
		Categories: []primitive.ObjectID{},
		Banners:    []primitive.ObjectID{},
		News:       []primitive.ObjectID{},
		CreatedAt:  now(),
	}

	res, err := m.panels.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := panelFromDoc(doc)

	return &out, nil
}

// PanelByID возвращает панель; storage.ErrNotFound, если её нет.
func (m *Mongo) PanelByID(ctx context.Context, id string) (*models.Panel, error) {
	const op = "storage/mongo/PanelByID"

	oid, err := toOID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc panelDoc
	if err := m.panels.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := panelFromDoc(doc)

	return &out, nil
}

// DeletePanel удаляет панель.
func (m *Mongo) DeletePanel(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePanel"

	return m.deleteByID(ctx, op, m.panels, id)
}

// AddMember добавляет entityID в набор kind через $addToSet: повторное добавление: no-op.
// Для логотипа ссылка перезаписывается через $set.
func (m *Mongo) AddMember(ctx context.Context, panelID string, kind models.EntityKind, entityID string) error {
	const op = "storage/mongo/AddMember"

	field, err := memberField(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	panelOID, err := toOID(panelID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	entityOID, err := toOID(entityID)
	if err != nil {
		return fmt.Errorf("%s: entity: %w", op, storage.ErrInvalidArgument)
	}

	operator := "$addToSet"
	if kind == models.KindLogo {
		operator = "$set"
	}

	res, err := m.panels.UpdateByID(ctx, panelOID, bson.D{
		{Key: operator, Value: bson.D{{Key: field, Value: entityOID}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RemoveMember убирает entityID из набора kind ($pull). Отсутствующий id: no-op.
// Ссылка на логотип снимается только если совпадает с entityID.
func (m *Mongo) RemoveMember(ctx context.Context, panelID string, kind models.EntityKind, entityID string) error {
	const op = "storage/mongo/RemoveMember"

	field, err := memberField(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	panelOID, err := toOID(panelID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	entityOID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		// Такого id не может быть в наборе.
		return nil
	}

	filter := bson.D{{Key: "_id", Value: panelOID}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: field, Value: entityOID}}}}

	if kind == models.KindLogo {
		filter = append(filter, bson.E{Key: field, Value: entityOID})
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: field, Value: ""}}}}
	}

	if _, err := m.panels.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveMemberEverywhere убирает ids из набора kind во всех панелях.
// Используется каскадом: удалённые глобально новости не должны оставаться в чужих наборах.
func (m *Mongo) RemoveMemberEverywhere(ctx context.Context, kind models.EntityKind, ids []string) error {
	const op = "storage/mongo/RemoveMemberEverywhere"

	field, err := memberField(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	oids := toOIDs(ids)
	if len(oids) == 0 {
		return nil
	}

	in := bson.D{{Key: "$in", Value: oids}}
	filter := bson.D{{Key: field, Value: in}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: field, Value: in}}}}

	if kind == models.KindLogo {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: field, Value: ""}}}}
	}

	if _, err := m.panels.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// deleteByID: общий DeleteOne по _id; storage.ErrNotFound, если записи нет.
func (m *Mongo) deleteByID(ctx context.Context, op string, coll *mongodriver.Collection, id string) error {
	oid, err := toOID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
