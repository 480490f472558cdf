package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.ListCategories(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, CategoryFromModel))
}

// CreateCategory принимает multipart: name (обязательно), image (опционально).
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	f, err := h.parseForm(w, r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer f.close()

	image, err := f.file("image")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	name, _ := f.value("name")
	c, err := h.svc.CreateCategory(r.Context(), uid, service.CreateCategoryInput{Name: name, Image: image})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CategoryFromModel(*c))
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Category(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CategoryFromModel(*c))
}

// UpdateCategory меняет только переданные поля формы.
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	f, err := h.parseForm(w, r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer f.close()

	image, err := f.file("image")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), uid, chi.URLParam(r, "id"), service.UpdateCategoryInput{
		Name:  f.optional("name"),
		Image: image,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CategoryFromModel(*c))
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.DeleteCategory(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteCategoryFromModel(res))
}

func deleteCategoryFromModel(res *models.DeleteCategoryResult) DeleteCategoryResponse {
	return DeleteCategoryResponse{
		Category:    CategoryFromModel(res.Category),
		Asset:       AssetResultFromModel(res.Asset),
		DeletedNews: res.DeletedNews,
	}
}
