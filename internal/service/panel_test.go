package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestAssertMember(t *testing.T) {
	t.Parallel()

	p := &models.Panel{Categories: []string{"c1"}, Logo: "l1"}

	require.NoError(t, assertMember(p, models.KindCategory, "c1"))
	require.NoError(t, assertMember(p, models.KindLogo, "l1"))
	require.ErrorIs(t, assertMember(p, models.KindCategory, "c2"), ErrForbidden)
	require.ErrorIs(t, assertMember(p, models.KindNews, "c1"), ErrForbidden)
	require.ErrorIs(t, assertMember(p, models.KindCategory, ""), ErrForbidden)
}

// Повторное добавление не создаёт дубликатов ни в хранилище, ни в памяти.
func TestAddMember_Idempotent(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := &models.Panel{ID: testPanelID}
	ms.EXPECT().AddMember(gomock.Any(), testPanelID, models.KindBanner, "b1").Return(nil).Times(2)

	require.NoError(t, s.addMember(context.Background(), p, models.KindBanner, "b1"))
	require.NoError(t, s.addMember(context.Background(), p, models.KindBanner, "b1"))
	require.Equal(t, []string{"b1"}, p.Banners)
}

func TestAddMember_StorageErrorKeepsPanel(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := &models.Panel{ID: testPanelID}
	ms.EXPECT().AddMember(gomock.Any(), testPanelID, models.KindNews, "n1").Return(errors.New("down"))

	require.Error(t, s.addMember(context.Background(), p, models.KindNews, "n1"))
	require.Empty(t, p.News)
}

func TestDestroyAsset_Results(t *testing.T) {
	s, _, ma, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	lg := discardLogger()
	ctx := context.Background()

	require.Equal(t, models.AssetSkipped, s.destroyAsset(ctx, lg, models.Asset{}).Result)

	ma.EXPECT().Destroy(gomock.Any(), "a1").Return(nil)
	require.Equal(t, models.AssetResult{ID: "a1", Result: models.AssetOK}, s.destroyAsset(ctx, lg, models.Asset{ID: "a1"}))

	ma.EXPECT().Destroy(gomock.Any(), "a2").Return(storage.ErrNotFound)
	require.Equal(t, models.AssetNotFound, s.destroyAsset(ctx, lg, models.Asset{ID: "a2"}).Result)

	ma.EXPECT().Destroy(gomock.Any(), "a3").Return(errors.New("s3 down"))
	require.Equal(t, models.AssetFailed, s.destroyAsset(ctx, lg, models.Asset{ID: "a3"}).Result)
}

func TestUploadAsset_ErrorMapping(t *testing.T) {
	s, _, ma, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	lg := discardLogger()
	ctx := context.Background()

	asset, err := s.uploadAsset(ctx, lg, "op", storage.FolderNews, nil)
	require.NoError(t, err)
	require.True(t, asset.IsZero())

	ma.EXPECT().Upload(gomock.Any(), storage.FolderNews, gomock.Any()).Return(models.Asset{}, storage.ErrInvalidArgument)
	_, err = s.uploadAsset(ctx, lg, "op", storage.FolderNews, pngUpload())
	require.ErrorIs(t, err, ErrInvalidArgument)

	ma.EXPECT().Upload(gomock.Any(), storage.FolderNews, gomock.Any()).Return(models.Asset{}, errors.New("s3 down"))
	_, err = s.uploadAsset(ctx, lg, "op", storage.FolderNews, pngUpload())
	require.ErrorIs(t, err, ErrUnavailable)
}

// Каскад: все новости рубрики (в т.ч. чужих панелей) удаляются вместе с изображениями,
// их членство снимается везде; сбой удаления изображения рубрики не прерывает операцию.
func TestDeleteCategory_Cascade(t *testing.T) {
	s, ms, ma, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	cat := &models.Category{ID: oid(1), Name: "Tech", Image: models.Asset{URL: "u", ID: "categories/c.png"}}
	own := models.News{ID: oid(2), CategoryID: cat.ID, Image: models.Asset{ID: "news_images/n.png"}}
	foreign := models.News{ID: oid(3), CategoryID: cat.ID}

	expectOwner(ms, models.Panel{ID: testPanelID, Categories: []string{cat.ID}, News: []string{own.ID}})

	gomock.InOrder(
		ms.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil),
		ms.EXPECT().DeleteNewsByCategory(gomock.Any(), cat.ID).Return([]models.News{own, foreign}, nil),
		ma.EXPECT().Destroy(gomock.Any(), "news_images/n.png").Return(nil),
		ms.EXPECT().RemoveMemberEverywhere(gomock.Any(), models.KindNews, []string{own.ID, foreign.ID}).Return(nil),
		ma.EXPECT().Destroy(gomock.Any(), "categories/c.png").Return(errors.New("s3 down")),
		ms.EXPECT().RemoveMember(gomock.Any(), testPanelID, models.KindCategory, cat.ID).Return(nil),
		ms.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(nil),
	)

	res, err := s.DeleteCategory(context.Background(), testUserID, cat.ID)
	require.NoError(t, err)
	require.Equal(t, 2, res.DeletedNews)
	require.Equal(t, models.AssetFailed, res.Asset.Result)
	require.Equal(t, "Tech", res.Category.Name)
}

// Повторное удаление той же рубрики: NotFound, а не Forbidden.
func TestDeleteCategory_SecondDeleteNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	expectOwner(ms, models.Panel{ID: testPanelID})
	ms.EXPECT().CategoryByID(gomock.Any(), oid(1)).Return(nil, storage.ErrNotFound)

	_, err := s.DeleteCategory(context.Background(), testUserID, oid(1))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategory_Forbidden(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	expectOwner(ms, models.Panel{ID: testPanelID})
	ms.EXPECT().CategoryByID(gomock.Any(), oid(1)).Return(&models.Category{ID: oid(1)}, nil)

	_, err := s.DeleteCategory(context.Background(), testUserID, oid(1))
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCategory_NoNewsSkipsMembershipSweep(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	cat := &models.Category{ID: oid(1), Name: "Empty"}
	expectOwner(ms, models.Panel{ID: testPanelID, Categories: []string{cat.ID}})

	ms.EXPECT().CategoryByID(gomock.Any(), cat.ID).Return(cat, nil)
	ms.EXPECT().DeleteNewsByCategory(gomock.Any(), cat.ID).Return([]models.News{}, nil)
	ms.EXPECT().RemoveMember(gomock.Any(), testPanelID, models.KindCategory, cat.ID).Return(nil)
	ms.EXPECT().DeleteCategory(gomock.Any(), cat.ID).Return(nil)

	res, err := s.DeleteCategory(context.Background(), testUserID, cat.ID)
	require.NoError(t, err)
	require.Zero(t, res.DeletedNews)
	require.Equal(t, models.AssetSkipped, res.Asset.Result)
}
