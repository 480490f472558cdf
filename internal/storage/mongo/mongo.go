// mongo реализует storage.Storage поверх MongoDB.
//
// mongo.go: подключение, индексы и общие хелперы;
// documents.go: BSON-представления сущностей и конвертация в models;
// остальные файлы: операции по видам сущностей.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-news-panel/internal/config"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection      = "users"
	panelsCollection     = "panels"
	categoriesCollection = "categories"
	newsCollection       = "news"
	bannersCollection    = "banners"
	logosCollection      = "logos"
	defaultDBName        = "panel"
)

// Mongo: адаптер MongoDB для всех коллекций сервиса.
type Mongo struct {
	client     *mongodriver.Client
	db         *mongodriver.Database
	users      *mongodriver.Collection
	panels     *mongodriver.Collection
	categories *mongodriver.Collection
	news       *mongodriver.Collection
	banners    *mongodriver.Collection
	logos      *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции и индексы.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		client:     cli,
		db:         db,
		users:      db.Collection(usersCollection),
		panels:     db.Collection(panelsCollection),
		categories: db.Collection(categoriesCollection),
		news:       db.Collection(newsCollection),
		banners:    db.Collection(bannersCollection),
		logos:      db.Collection(logosCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close закрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы:
//   - users.username: уникальный;
//   - news.link: уникальный (источник истины для уникальности slug);
//   - news.category_id: каскадное удаление по рубрике;
//   - news.created_at(desc): выдача «сначала новые»;
//   - categories.name: поиск рубрики по имени.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	if _, err := m.users.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("username_unique").SetUnique(true),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (users): %w", err)
	}

	if _, err := m.news.Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "link", Value: 1}},
			Options: options.Index().SetName("link_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetName("category_id"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (news): %w", err)
	}

	if _, err := m.categories.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name"),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes (categories): %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не разбирается, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}

// toOID разбирает hex-идентификатор. Некорректный формат трактуется как «нет такой записи».
func toOID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}

	return oid, nil
}

// toOIDs разбирает набор идентификаторов, пропуская некорректные.
func toOIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id)); err == nil {
			out = append(out, oid)
		}
	}

	return out
}

// hexOrEmpty возвращает hex или "" для нулевого ObjectID.
func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}

	return oid.Hex()
}

// now: текущее время с точностью MongoDB DateTime (миллисекунды).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// newestFirst: сортировка «сначала новые» со стабильным tie-break по _id.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
}

// afterUpdate: FindOneAndUpdate, возвращающий документ после изменения.
func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// memberField: имя поля панели для вида сущности.
func memberField(kind models.EntityKind) (string, error) {
	switch kind {
	case models.KindCategory:
		return "categories", nil
	case models.KindBanner:
		return "banners", nil
	case models.KindNews:
		return "news", nil
	case models.KindLogo:
		return "logo", nil
	default:
		return "", storage.ErrInvalidArgument
	}
}

// decodeAll вычитывает курсор целиком и конвертирует документы.
func decodeAll[D any, M any](ctx context.Context, cur *mongodriver.Cursor, conv func(D) M) ([]M, error) {
	defer cur.Close(ctx)

	out := make([]M, 0)
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, conv(doc))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Mongo)(nil)
