package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.ListNews(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, NewsFromModel))
}

// CreateNews принимает multipart: title, content, category (id или имя рубрики), image.
func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
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

	title, _ := f.value("title")
	content, _ := f.value("content")
	category, _ := f.value("category")

	v, err := h.svc.CreateNews(r.Context(), uid, service.CreateNewsInput{
		Title:    title,
		Content:  content,
		Category: category,
		Image:    image,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, NewsFromModel(*v))
}

func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	v, err := h.svc.News(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewsFromModel(*v))
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
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

	v, err := h.svc.UpdateNews(r.Context(), uid, chi.URLParam(r, "id"), service.UpdateNewsInput{
		Title:    f.optional("title"),
		Content:  f.optional("content"),
		Category: f.optional("category"),
		Image:    image,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewsFromModel(*v))
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.DeleteNews(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Asset: AssetResultFromModel(*res)})
}
