package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/stretchr/testify/require"
)

// Сквозной сценарий: signup -> login -> рубрика "Tech" -> новость "Big Launch" ->
// чтение по link -> удаление рубрики -> новость больше не находится.
func TestFlow_SignupToCascade(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var (
		catID  = oid(1)
		newsID = oid(2)
		saved  models.User
		news   models.News
	)

	// signup
	ms.EXPECT().UserByUsername(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	ms.EXPECT().CreatePanel(gomock.Any()).Return(&models.Panel{ID: testPanelID}, nil)
	ms.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (*models.User, error) {
			u.ID = testUserID
			saved = u
			return &u, nil
		})

	user, err := s.Signup(ctx, "alice", "secret")
	require.NoError(t, err)

	// login
	ms.EXPECT().UserByUsername(gomock.Any(), "alice").DoAndReturn(
		func(context.Context, string) (*models.User, error) { u := saved; return &u, nil })
	ms.EXPECT().PanelByID(gomock.Any(), testPanelID).Return(&models.Panel{ID: testPanelID}, nil)

	login, err := s.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	uid, err := s.VerifyToken(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)

	// рубрика
	expectOwner(ms, models.Panel{ID: testPanelID})
	ms.EXPECT().CreateCategory(gomock.Any(), models.Category{Name: "Tech"}).Return(&models.Category{ID: catID, Name: "Tech"}, nil)
	ms.EXPECT().AddMember(gomock.Any(), testPanelID, models.KindCategory, catID).Return(nil)

	cat, err := s.CreateCategory(ctx, uid, CreateCategoryInput{Name: "Tech"})
	require.NoError(t, err)

	// новость по имени рубрики
	expectOwner(ms, models.Panel{ID: testPanelID, Categories: []string{cat.ID}})
	ms.EXPECT().CategoriesByIDs(gomock.Any(), []string{cat.ID}).Return([]models.Category{*cat}, nil)
	ms.EXPECT().CreateNews(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.News) (*models.News, error) {
			n.ID = newsID
			news = n
			return &n, nil
		})
	ms.EXPECT().AddMember(gomock.Any(), testPanelID, models.KindNews, newsID).Return(nil)

	created, err := s.CreateNews(ctx, uid, CreateNewsInput{Title: "Big Launch", Content: "today", Category: "Tech"})
	require.NoError(t, err)
	require.Equal(t, "big-launch", created.Link)

	// публичное чтение по link
	ms.EXPECT().NewsByLink(gomock.Any(), "big-launch").DoAndReturn(
		func(context.Context, string) (*models.News, error) { n := news; return &n, nil })
	ms.EXPECT().CategoriesByIDs(gomock.Any(), []string{cat.ID}).Return([]models.Category{*cat}, nil)
	ms.EXPECT().UsersByIDs(gomock.Any(), []string{uid}).Return([]models.User{saved}, nil)

	view, err := s.NewsByLink(ctx, "big-launch")
	require.NoError(t, err)
	require.Equal(t, "Tech", view.Category.Name)
	require.Equal(t, "alice", view.Author.Username)

	// удаление рубрики каскадом
	expectOwner(ms, models.Panel{ID: testPanelID, Categories: []string{cat.ID}, News: []string{newsID}})
	ms.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	ms.EXPECT().DeleteNewsByCategory(gomock.Any(), cat.ID).Return([]models.News{news}, nil)
	ms.EXPECT().RemoveMemberEverywhere(gomock.Any(), models.KindNews, []string{newsID}).Return(nil)
	ms.EXPECT().RemoveMember(gomock.Any(), testPanelID, models.KindCategory, cat.ID).Return(nil)
	ms.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(nil)

	res, err := s.DeleteCategory(ctx, uid, cat.ID)
	require.NoError(t, err)
	require.Equal(t, 1, res.DeletedNews)

	// новость удалена
	expectOwner(ms, models.Panel{ID: testPanelID})
	ms.EXPECT().NewsByID(gomock.Any(), newsID).Return(nil, storage.ErrNotFound)

	_, err = s.News(ctx, uid, newsID)
	require.ErrorIs(t, err, ErrNotFound)
}
