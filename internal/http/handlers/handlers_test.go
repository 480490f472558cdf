package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-news-panel/internal/http/middleware"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/service"
	"github.com/stretchr/testify/require"
)

const testUserID = "650000000000000000000001"

// fakeService переопределяет только нужные тесту методы;
// вызов любого другого паникует на nil-интерфейсе.
type fakeService struct {
	Service

	signup         func(ctx context.Context, username, password string) (*models.User, error)
	login          func(ctx context.Context, username, password string) (*service.LoginResult, error)
	loginDetails   func(ctx context.Context) ([]models.User, error)
	createCategory func(ctx context.Context, userID string, in service.CreateCategoryInput) (*models.Category, error)
	updateCategory func(ctx context.Context, userID, id string, in service.UpdateCategoryInput) (*models.Category, error)
	deleteCategory func(ctx context.Context, userID, id string) (*models.DeleteCategoryResult, error)
	listCategories func(ctx context.Context, userID string) ([]models.Category, error)
	createNews     func(ctx context.Context, userID string, in service.CreateNewsInput) (*models.NewsView, error)
	updateNews     func(ctx context.Context, userID, id string, in service.UpdateNewsInput) (*models.NewsView, error)
	setLogo        func(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error)
	createBanner   func(ctx context.Context, userID string, in service.CreateBannerInput) (*models.Banner, error)
	newsByLink     func(ctx context.Context, link string) (*models.NewsView, error)
	publicBanners  func(ctx context.Context) ([]models.Banner, error)
}

func (f *fakeService) Signup(ctx context.Context, u, p string) (*models.User, error) {
	return f.signup(ctx, u, p)
}

func (f *fakeService) Login(ctx context.Context, u, p string) (*service.LoginResult, error) {
	return f.login(ctx, u, p)
}

func (f *fakeService) LoginDetails(ctx context.Context) ([]models.User, error) {
	return f.loginDetails(ctx)
}

func (f *fakeService) CreateCategory(ctx context.Context, uid string, in service.CreateCategoryInput) (*models.Category, error) {
	return f.createCategory(ctx, uid, in)
}

func (f *fakeService) UpdateCategory(ctx context.Context, uid, id string, in service.UpdateCategoryInput) (*models.Category, error) {
	return f.updateCategory(ctx, uid, id, in)
}

func (f *fakeService) DeleteCategory(ctx context.Context, uid, id string) (*models.DeleteCategoryResult, error) {
	return f.deleteCategory(ctx, uid, id)
}

func (f *fakeService) ListCategories(ctx context.Context, uid string) ([]models.Category, error) {
	return f.listCategories(ctx, uid)
}

func (f *fakeService) CreateNews(ctx context.Context, uid string, in service.CreateNewsInput) (*models.NewsView, error) {
	return f.createNews(ctx, uid, in)
}

func (f *fakeService) UpdateNews(ctx context.Context, uid, id string, in service.UpdateNewsInput) (*models.NewsView, error) {
	return f.updateNews(ctx, uid, id, in)
}

func (f *fakeService) SetLogo(ctx context.Context, uid string, file *models.Upload) (*models.Logo, error) {
	return f.setLogo(ctx, uid, file)
}

func (f *fakeService) CreateBanner(ctx context.Context, uid string, in service.CreateBannerInput) (*models.Banner, error) {
	return f.createBanner(ctx, uid, in)
}

func (f *fakeService) NewsByLink(ctx context.Context, link string) (*models.NewsView, error) {
	return f.newsByLink(ctx, link)
}

func (f *fakeService) PublicBanners(ctx context.Context) ([]models.Banner, error) {
	return f.publicBanners(ctx)
}

// asUser имитирует middleware.RequireAuth.
func asUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUserID)))
	})
}

type part struct {
	field, filename, contentType string
	data                         []byte
}

// multipartBody собирает multipart/form-data из текстовых полей и файлов.
func multipartBody(t *testing.T, fields map[string]string, files ...part) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	for _, p := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		hdr.Set("Content-Type", p.contentType)
		w, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

type errEnvelope struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestSignup_Created(t *testing.T) {
	svc := &fakeService{signup: func(_ context.Context, u, p string) (*models.User, error) {
		require.Equal(t, "alice", u)
		require.Equal(t, "secret", p)
		return &models.User{ID: testUserID, Username: u, PanelID: "p1", PasswordHash: "hash"}, nil
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"username":"alice","password":"secret"}`))
	h.Signup(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotContains(t, rr.Body.String(), "hash")

	got := decodeBody[UserResponse](t, rr)
	require.Equal(t, testUserID, got.ID)
	require.Equal(t, "p1", got.PanelID)
}

func TestSignup_UnknownFieldIs400(t *testing.T) {
	h := New(&fakeService{}, 0)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"username":"a","password":"b","admin":true}`))
	h.Signup(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeBody[errEnvelope](t, rr).Error.Code)
}

func TestLogin_InvalidCredentialsIs401(t *testing.T) {
	svc := &fakeService{login: func(context.Context, string, string) (*service.LoginResult, error) {
		return nil, service.ErrInvalidCredentials
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"x"}`)))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_OK(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{login: func(context.Context, string, string) (*service.LoginResult, error) {
		return &service.LoginResult{
			Token:     "jwt",
			ExpiresAt: exp,
			User:      models.User{ID: testUserID, Username: "alice"},
			Panel:     models.Panel{ID: "p1", Categories: []string{"c1"}},
		}, nil
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"x"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[LoginResponse](t, rr)
	require.Equal(t, "jwt", got.Token)
	require.True(t, exp.Equal(got.ExpiresAt))
	require.Equal(t, []string{"c1"}, got.Panel.Categories)
	require.Equal(t, []string{}, got.Panel.News)
}

func TestLoginDetails_OnlyIDAndUsername(t *testing.T) {
	svc := &fakeService{loginDetails: func(context.Context) ([]models.User, error) {
		return []models.User{{ID: "u1", Username: "alice", PasswordHash: "h", PanelID: "p1"}}, nil
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	h.LoginDetails(rr, httptest.NewRequest(http.MethodGet, "/api/auth/logindetails", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "p1")
	got := decodeBody[LoginDetailsResponse](t, rr)
	require.Equal(t, []UserResponse{{ID: "u1", Username: "alice"}}, got.Users)
}

func TestCreateCategory_MultipartWithImage(t *testing.T) {
	svc := &fakeService{createCategory: func(_ context.Context, uid string, in service.CreateCategoryInput) (*models.Category, error) {
		require.Equal(t, testUserID, uid)
		require.Equal(t, "Tech", in.Name)
		require.NotNil(t, in.Image)
		require.Equal(t, "image/png", in.Image.ContentType)
		require.EqualValues(t, 4, in.Image.Size)

		data, err := io.ReadAll(in.Image.Data)
		require.NoError(t, err)
		require.Equal(t, []byte("\x89PNG"), data)

		return &models.Category{ID: "c1", Name: in.Name, Image: models.Asset{ID: "categories/x.png", URL: "http://cdn/x.png"}}, nil
	}}
	h := New(svc, 0)

	body, ct := multipartBody(t, map[string]string{"name": "Tech"},
		part{field: "image", filename: "x.png", contentType: "image/png", data: []byte("\x89PNG")})

	req := httptest.NewRequest(http.MethodPost, "/api/categories", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.CreateCategory)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	got := decodeBody[Category](t, rr)
	require.Equal(t, "c1", got.ID)
	require.Equal(t, &Image{URL: "http://cdn/x.png", ID: "categories/x.png"}, got.Image)
}

func TestCreateCategory_WithoutUserIs401(t *testing.T) {
	h := New(&fakeService{}, 0)

	rr := httptest.NewRecorder()
	h.CreateCategory(rr, httptest.NewRequest(http.MethodPost, "/api/categories", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateCategory_TooLargeIs400(t *testing.T) {
	h := New(&fakeService{}, 16)

	big := bytes.Repeat([]byte("a"), formOverhead+64)
	body, ct := multipartBody(t, nil, part{field: "image", filename: "x.png", contentType: "image/png", data: big})

	req := httptest.NewRequest(http.MethodPost, "/api/categories", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.CreateCategory)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateCategory_UrlencodedRenameAndForbidden(t *testing.T) {
	svc := &fakeService{updateCategory: func(_ context.Context, _, id string, in service.UpdateCategoryInput) (*models.Category, error) {
		require.Equal(t, "c1", id)
		require.NotNil(t, in.Name)
		require.Equal(t, "Science", *in.Name)
		require.Nil(t, in.Image)
		return nil, service.ErrForbidden
	}}
	h := New(svc, 0)

	r := chi.NewRouter()
	r.With(asUser).Put("/api/categories/{id}", h.UpdateCategory)

	req := httptest.NewRequest(http.MethodPut, "/api/categories/c1", strings.NewReader(url.Values{"name": {"Science"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "permission_denied", decodeBody[errEnvelope](t, rr).Error.Code)
}

func TestUpdateNews_AbsentFieldsStayNil(t *testing.T) {
	svc := &fakeService{updateNews: func(_ context.Context, _, id string, in service.UpdateNewsInput) (*models.NewsView, error) {
		require.Nil(t, in.Content)
		require.Nil(t, in.Category)
		require.Equal(t, "New title", *in.Title)
		return &models.NewsView{News: models.News{ID: id, Title: *in.Title, Link: "new-title"}}, nil
	}}
	h := New(svc, 0)

	r := chi.NewRouter()
	r.With(asUser).Put("/api/news/{id}", h.UpdateNews)

	body, ct := multipartBody(t, map[string]string{"title": "New title"})
	req := httptest.NewRequest(http.MethodPut, "/api/news/n1", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[News](t, rr)
	require.Equal(t, "new-title", got.Link)
	require.Nil(t, got.Category)
}

func TestCreateNews_ConflictIs409(t *testing.T) {
	svc := &fakeService{createNews: func(_ context.Context, _ string, in service.CreateNewsInput) (*models.NewsView, error) {
		require.Equal(t, "Tech", in.Category)
		require.Nil(t, in.Image)
		return nil, service.ErrConflict
	}}
	h := New(svc, 0)

	body, ct := multipartBody(t, map[string]string{"title": "Big Launch", "content": "x", "category": "Tech"})
	req := httptest.NewRequest(http.MethodPost, "/api/news", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.CreateNews)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "already_exists", decodeBody[errEnvelope](t, rr).Error.Code)
}

func TestDeleteCategory_ReportsCascade(t *testing.T) {
	svc := &fakeService{deleteCategory: func(context.Context, string, string) (*models.DeleteCategoryResult, error) {
		return &models.DeleteCategoryResult{
			Category:    models.Category{ID: "c1", Name: "Tech"},
			Asset:       models.AssetResult{Result: models.AssetSkipped},
			DeletedNews: 2,
		}, nil
	}}
	h := New(svc, 0)

	r := chi.NewRouter()
	r.With(asUser).Delete("/api/categories/{id}", h.DeleteCategory)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/categories/c1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[DeleteCategoryResponse](t, rr)
	require.Equal(t, 2, got.DeletedNews)
	require.Equal(t, models.AssetSkipped, got.Asset.Result)
	require.Nil(t, got.Category.Image)
}

func TestListCategories_EmptyIsArray(t *testing.T) {
	svc := &fakeService{listCategories: func(context.Context, string) ([]models.Category, error) {
		return nil, nil
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.ListCategories)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"items":[]}`, rr.Body.String())
}

func TestSetLogo_UsesLogoField(t *testing.T) {
	svc := &fakeService{setLogo: func(_ context.Context, _ string, file *models.Upload) (*models.Logo, error) {
		require.NotNil(t, file)
		require.Equal(t, "image/jpeg", file.ContentType)
		return &models.Logo{ID: "l1", Image: models.Asset{ID: "logo/a.jpg", URL: "http://cdn/a.jpg"}}, nil
	}}
	h := New(svc, 0)

	body, ct := multipartBody(t, nil, part{field: "logo", filename: "a.jpg", contentType: "image/jpeg", data: []byte{0xff, 0xd8}})
	req := httptest.NewRequest(http.MethodPut, "/api/logo", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.SetLogo)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "http://cdn/a.jpg", decodeBody[Logo](t, rr).Image.URL)
}

func TestCreateBanner_UnavailableIs503(t *testing.T) {
	svc := &fakeService{createBanner: func(_ context.Context, _ string, in service.CreateBannerInput) (*models.Banner, error) {
		require.Equal(t, "https://example.com", in.Link)
		return nil, service.ErrUnavailable
	}}
	h := New(svc, 0)

	body, ct := multipartBody(t, map[string]string{"link": "https://example.com"},
		part{field: "image", filename: "b.png", contentType: "image/png", data: []byte("png")})
	req := httptest.NewRequest(http.MethodPost, "/api/banner", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	asUser(http.HandlerFunc(h.CreateBanner)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestPublicNewsByLink(t *testing.T) {
	svc := &fakeService{newsByLink: func(_ context.Context, link string) (*models.NewsView, error) {
		if link != "big-launch" {
			return nil, service.ErrNotFound
		}
		return &models.NewsView{
			News:     models.News{ID: "n1", Title: "Big Launch", Link: link},
			Category: &models.CategoryRef{ID: "c1", Name: "Tech"},
			Author:   &models.AuthorRef{ID: testUserID, Username: "alice"},
		}, nil
	}}
	h := New(svc, 0)

	r := chi.NewRouter()
	r.Get("/public/news/{link}", h.PublicNewsByLink)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/public/news/big-launch", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	got := decodeBody[News](t, rr)
	require.Equal(t, &CategoryRef{ID: "c1", Name: "Tech"}, got.Category)
	require.Equal(t, "alice", got.Author.Username)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/public/news/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPublicBanners(t *testing.T) {
	svc := &fakeService{publicBanners: func(context.Context) ([]models.Banner, error) {
		return []models.Banner{{ID: "b1", Link: "https://example.com"}}, nil
	}}
	h := New(svc, 0)

	rr := httptest.NewRecorder()
	h.PublicBanners(rr, httptest.NewRequest(http.MethodGet, "/public/banners", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[ListResponse[Banner]](t, rr)
	require.Len(t, got.Items, 1)
	require.Equal(t, "https://example.com", got.Items[0].Link)
}
