package mongo

import (
	"time"

	"github.com/pribylovaa/go-news-panel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type assetDoc struct {
	URL string `bson:"url"`
	ID  string `bson:"id"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	PanelID      primitive.ObjectID `bson:"panel_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// panelDoc хранит наборы как массивы ObjectID; при создании они пустые (не null),
// иначе $addToSet на поле упадёт.
type panelDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Categories []primitive.ObjectID `bson:"categories"`
	Banners    []primitive.ObjectID `bson:"banners"`
	News       []primitive.ObjectID `bson:"news"`
	Logo       primitive.ObjectID   `bson:"logo,omitempty"`
	CreatedAt  time.Time            `bson:"created_at"`
}

type categoryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Image     *assetDoc          `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type newsDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Link       string             `bson:"link"`
	Image      *assetDoc          `bson:"image,omitempty"`
	AuthorID   primitive.ObjectID `bson:"author_id,omitempty"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type bannerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Image     *assetDoc          `bson:"image,omitempty"`
	Link      string             `bson:"link"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type logoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Image     *assetDoc          `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toAssetDoc(a models.Asset) *assetDoc {
	if a.IsZero() {
		return nil
	}

	return &assetDoc{URL: a.URL, ID: a.ID}
}

func fromAssetDoc(d *assetDoc) models.Asset {
	if d == nil {
		return models.Asset{}
	}

	return models.Asset{URL: d.URL, ID: d.ID}
}

func hexAll(oids []primitive.ObjectID) []string {
	out := make([]string, 0, len(oids))
	for _, oid := range oids {
		out = append(out, oid.Hex())
	}

	return out
}

func userFromDoc(d userDoc) models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		PanelID:      hexOrEmpty(d.PanelID),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

func panelFromDoc(d panelDoc) models.Panel {
	return models.Panel{
		ID:         d.ID.Hex(),
		Categories: hexAll(d.Categories),
		Banners:    hexAll(d.Banners),
		News:       hexAll(d.News),
		Logo:       hexOrEmpty(d.Logo),
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func categoryFromDoc(d categoryDoc) models.Category {
	return models.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Image:     fromAssetDoc(d.Image),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func newsFromDoc(d newsDoc) models.News {
	return models.News{
		ID:         d.ID.Hex(),
		Title:      d.Title,
		Content:    d.Content,
		Link:       d.Link,
		Image:      fromAssetDoc(d.Image),
		AuthorID:   hexOrEmpty(d.AuthorID),
		CategoryID: hexOrEmpty(d.CategoryID),
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

func bannerFromDoc(d bannerDoc) models.Banner {
	return models.Banner{
		ID:        d.ID.Hex(),
		Image:     fromAssetDoc(d.Image),
		Link:      d.Link,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func logoFromDoc(d logoDoc) models.Logo {
	return models.Logo{
		ID:        d.ID.Hex(),
		Image:     fromAssetDoc(d.Image),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// withImage собирает update: непустое изображение попадает в $set, пустое снимается через $unset.
func withImage(set bson.D, a models.Asset) bson.D {
	if doc := toAssetDoc(a); doc != nil {
		return bson.D{{Key: "$set", Value: append(set, bson.E{Key: "image", Value: doc})}}
	}

	return bson.D{
		{Key: "$set", Value: set},
		{Key: "$unset", Value: bson.D{{Key: "image", Value: ""}}},
	}
}
