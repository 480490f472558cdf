package mongo

// Интеграционные тесты MongoDB-адаптера.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/mongo -v -race -count=1
//
// Без GO_TEST_INTEGRATION выполняются только юнит-тесты хелперов.

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-panel/internal/config"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testTimeout: общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в DATABASE_URL; каждый тест работает в своей БД.
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// mustNewMongo подключается к отдельной тестовой БД и регистрирует её удаление.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	cfg := &config.Config{
		DB: config.DBConfig{URL: os.Getenv("DATABASE_URL") + "/panel_test_" + uuid.NewString()[:8]},
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	require.NoError(t, err, "DATABASE_URL=%s", cfg.DB.URL)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

// --- юнит-тесты хелперов ---

func TestDatabaseFromURI(t *testing.T) {
	t.Parallel()

	require.Equal(t, "panel_db", databaseFromURI("mongodb://localhost:27017/panel_db"))
	require.Equal(t, "x", databaseFromURI("mongodb://u:p@h:1/x?authSource=admin"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017"))
	require.Equal(t, defaultDBName, databaseFromURI("::bad::"))
}

func TestToOID(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	got, err := toOID(" " + oid.Hex() + " ")
	require.NoError(t, err)
	require.Equal(t, oid, got)

	_, err = toOID("not-an-id")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Len(t, toOIDs([]string{oid.Hex(), "bad", ""}), 1)
	require.Empty(t, hexOrEmpty(primitive.NilObjectID))
}

func TestMemberField(t *testing.T) {
	t.Parallel()

	for kind, want := range map[models.EntityKind]string{
		models.KindCategory: "categories",
		models.KindBanner:   "banners",
		models.KindNews:     "news",
		models.KindLogo:     "logo",
	} {
		got, err := memberField(kind)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := memberField("user")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestWithImage(t *testing.T) {
	t.Parallel()

	set := withImage(nil, models.Asset{URL: "u", ID: "id"})
	require.Len(t, set, 1)
	require.Equal(t, "$set", set[0].Key)

	unset := withImage(nil, models.Asset{})
	require.Len(t, unset, 2)
	require.Equal(t, "$unset", unset[1].Key)
}

// --- интеграционные тесты ---

func TestUsers_CreateAndLookup(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	panel, err := m.CreatePanel(ctx)
	require.NoError(t, err)

	u, err := m.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", PanelID: panel.ID})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, panel.ID, u.PanelID)

	byName, err := m.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)

	byID, err := m.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	_, err = m.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h2"})
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = m.UserByID(ctx, "bad")
	require.ErrorIs(t, err, storage.ErrNotFound)

	users, err := m.UsersByIDs(ctx, []string{u.ID, primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	require.Len(t, users, 1)

	all, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPanels_MembershipIsSetLike(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	p, err := m.CreatePanel(ctx)
	require.NoError(t, err)
	require.Empty(t, p.Categories)

	cid := primitive.NewObjectID().Hex()
	require.NoError(t, m.AddMember(ctx, p.ID, models.KindCategory, cid))
	require.NoError(t, m.AddMember(ctx, p.ID, models.KindCategory, cid))

	got, err := m.PanelByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, []string{cid}, got.Categories)

	require.NoError(t, m.RemoveMember(ctx, p.ID, models.KindCategory, primitive.NewObjectID().Hex()))
	require.NoError(t, m.RemoveMember(ctx, p.ID, models.KindCategory, cid))
	require.NoError(t, m.RemoveMember(ctx, p.ID, models.KindCategory, cid))

	got, err = m.PanelByID(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, got.Categories)

	err = m.AddMember(ctx, primitive.NewObjectID().Hex(), models.KindNews, cid)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPanels_LogoReference(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	p, err := m.CreatePanel(ctx)
	require.NoError(t, err)

	l1, l2 := primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()
	require.NoError(t, m.AddMember(ctx, p.ID, models.KindLogo, l1))
	require.NoError(t, m.AddMember(ctx, p.ID, models.KindLogo, l2))

	got, err := m.PanelByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, l2, got.Logo)

	// Снятие чужой ссылки не трогает текущую.
	require.NoError(t, m.RemoveMember(ctx, p.ID, models.KindLogo, l1))
	got, err = m.PanelByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, l2, got.Logo)

	require.NoError(t, m.RemoveMember(ctx, p.ID, models.KindLogo, l2))
	got, err = m.PanelByID(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, got.Logo)
}

func TestPanels_RemoveMemberEverywhere(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	p1, err := m.CreatePanel(ctx)
	require.NoError(t, err)
	p2, err := m.CreatePanel(ctx)
	require.NoError(t, err)

	n1, n2, keep := primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()
	require.NoError(t, m.AddMember(ctx, p1.ID, models.KindNews, n1))
	require.NoError(t, m.AddMember(ctx, p1.ID, models.KindNews, keep))
	require.NoError(t, m.AddMember(ctx, p2.ID, models.KindNews, n2))

	require.NoError(t, m.RemoveMemberEverywhere(ctx, models.KindNews, []string{n1, n2}))

	got1, err := m.PanelByID(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, []string{keep}, got1.News)

	got2, err := m.PanelByID(ctx, p2.ID)
	require.NoError(t, err)
	require.Empty(t, got2.News)
}

func TestCategories_CRUD(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	c, err := m.CreateCategory(ctx, models.Category{Name: "Tech", Image: models.Asset{URL: "u1", ID: "categories/a.png"}})
	require.NoError(t, err)

	byName, err := m.CategoryByName(ctx, "Tech")
	require.NoError(t, err)
	require.Equal(t, c.ID, byName.ID)
	require.Equal(t, "categories/a.png", byName.Image.ID)

	c.Name = "Science"
	c.Image = models.Asset{}
	upd, err := m.UpdateCategory(ctx, *c)
	require.NoError(t, err)
	require.Equal(t, "Science", upd.Name)
	require.True(t, upd.Image.IsZero())

	list, err := m.CategoriesByIDs(ctx, []string{c.ID, "bad"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, m.DeleteCategory(ctx, c.ID))
	require.ErrorIs(t, m.DeleteCategory(ctx, c.ID), storage.ErrNotFound)

	_, err = m.CategoryByID(ctx, c.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNews_LinkUniqueAndCascade(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	cat := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	n1, err := m.CreateNews(ctx, models.News{Title: "Big Launch", Content: "c", Link: "big-launch", CategoryID: cat})
	require.NoError(t, err)

	_, err = m.CreateNews(ctx, models.News{Title: "Big Launch", Content: "c", Link: "big-launch", CategoryID: cat})
	require.ErrorIs(t, err, storage.ErrConflict)

	n2, err := m.CreateNews(ctx, models.News{Title: "Second", Content: "c", Link: "second", CategoryID: cat})
	require.NoError(t, err)
	n3, err := m.CreateNews(ctx, models.News{Title: "Other", Content: "c", Link: "other", CategoryID: other})
	require.NoError(t, err)

	// Переименование в занятый link: конфликт.
	n2.Link = "big-launch"
	_, err = m.UpdateNews(ctx, *n2)
	require.ErrorIs(t, err, storage.ErrConflict)

	byLink, err := m.NewsByLink(ctx, "big-launch")
	require.NoError(t, err)
	require.Equal(t, n1.ID, byLink.ID)

	all, err := m.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, n3.ID, all[0].ID, "сначала новые")

	deleted, err := m.DeleteNewsByCategory(ctx, cat)
	require.NoError(t, err)
	require.Len(t, deleted, 2)

	_, err = m.NewsByID(ctx, n1.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	left, err := m.NewsByIDs(ctx, []string{n1.ID, n2.ID, n3.ID})
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, n3.ID, left[0].ID)
}

func TestBannersAndLogos_CRUD(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	b, err := m.CreateBanner(ctx, models.Banner{Link: "https://example.com", Image: models.Asset{URL: "u", ID: "banner/b.png"}})
	require.NoError(t, err)

	b.Link = "https://example.org"
	upd, err := m.UpdateBanner(ctx, *b)
	require.NoError(t, err)
	require.Equal(t, "https://example.org", upd.Link)
	require.Equal(t, "banner/b.png", upd.Image.ID)

	banners, err := m.ListBanners(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)

	require.NoError(t, m.DeleteBanner(ctx, b.ID))
	_, err = m.BannerByID(ctx, b.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	l, err := m.CreateLogo(ctx, models.Logo{Image: models.Asset{URL: "u1", ID: "logo/1.png"}})
	require.NoError(t, err)

	l.Image = models.Asset{URL: "u2", ID: "logo/2.png"}
	updL, err := m.UpdateLogo(ctx, *l)
	require.NoError(t, err)
	require.Equal(t, "u2", updL.Image.URL)

	logos, err := m.ListLogos(ctx)
	require.NoError(t, err)
	require.Len(t, logos, 1)

	require.NoError(t, m.DeleteLogo(ctx, l.ID))
	_, err = m.LogoByID(ctx, l.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
