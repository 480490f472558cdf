package handlers

import (
	"context"
	"net/http"

	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/models"
)

func (h *Handlers) GetLogo(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	l, err := h.svc.Logo(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LogoFromModel(*l))
}

// CreateLogo (POST): только если логотипа ещё нет, иначе 409.
func (h *Handlers) CreateLogo(w http.ResponseWriter, r *http.Request) {
	h.writeLogo(w, r, http.StatusCreated, h.svc.CreateLogo)
}

// SetLogo (PUT): создаёт логотип или заменяет изображение существующего.
func (h *Handlers) SetLogo(w http.ResponseWriter, r *http.Request) {
	h.writeLogo(w, r, http.StatusOK, h.svc.SetLogo)
}

func (h *Handlers) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.DeleteLogo(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Asset: AssetResultFromModel(*res)})
}

type logoFunc func(ctx context.Context, userID string, file *models.Upload) (*models.Logo, error)

// writeLogo: общая часть POST/PUT: multipart с полем logo.
func (h *Handlers) writeLogo(w http.ResponseWriter, r *http.Request, status int, call logoFunc) {
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

	file, err := f.file("logo")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	l, err := call(r.Context(), uid, file)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, status, LogoFromModel(*l))
}
