package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
)

// Публичные выборки, без аутентификации.

func (h *Handlers) PublicNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PublicNews(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, NewsFromModel))
}

func (h *Handlers) PublicNewsByLink(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.NewsByLink(r.Context(), chi.URLParam(r, "link"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewsFromModel(*v))
}

func (h *Handlers) PublicCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PublicCategories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, CategoryFromModel))
}

func (h *Handlers) PublicBanners(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PublicBanners(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, BannerFromModel))
}

func (h *Handlers) PublicLogos(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PublicLogos(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, LogoFromModel))
}
