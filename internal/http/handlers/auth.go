package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-news-panel/internal/errors"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var in AuthRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	user, err := h.svc.Signup(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, UserFromModel(*user))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in AuthRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	res, err := h.svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      UserFromModel(res.User),
		Panel:     PanelFromModel(res.Panel),
	})
}

// LoginDetails отдаёт id и username всех пользователей, без хэшей и панелей.
func (h *Handlers) LoginDetails(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.LoginDetails(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := LoginDetailsResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, UserResponse{ID: u.ID, Username: u.Username})
	}

	writeJSON(w, http.StatusOK, out)
}
