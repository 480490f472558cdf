package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

func (h *Handlers) ListBanners(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.ListBanners(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listOf(items, BannerFromModel))
}

// CreateBanner принимает multipart: link, image (обязательно).
func (h *Handlers) CreateBanner(w http.ResponseWriter, r *http.Request) {
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

	link, _ := f.value("link")
	b, err := h.svc.CreateBanner(r.Context(), uid, service.CreateBannerInput{Link: link, Image: image})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, BannerFromModel(*b))
}

func (h *Handlers) UpdateBanner(w http.ResponseWriter, r *http.Request) {
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

	b, err := h.svc.UpdateBanner(r.Context(), uid, chi.URLParam(r, "id"), service.UpdateBannerInput{
		Link:  f.optional("link"),
		Image: image,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BannerFromModel(*b))
}

func (h *Handlers) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.DeleteBanner(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Asset: AssetResultFromModel(*res)})
}
