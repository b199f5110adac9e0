package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/schema"
	"github.com/diewo77/go-srm/internal/services"
)

type AuthHandler struct {
	Deps
	users    *services.UserService
	sessions *auth.Sessions
}

func NewAuthHandler(d Deps, users *services.UserService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{Deps: d, users: users, sessions: sessions}
}

type loginResponse struct {
	User  auth.Identity `json:"user"`
	Token string        `json:"token"`
}

// Login checks the credentials, sets the session cookie and also returns
// the token for clients that send it as a bearer header.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var in schema.LoginInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	user, err := h.users.Authenticate(r.Context(), schema.NormalizeEmail(in.Email), in.Password)
	if err != nil {
		return userError(err)
	}
	token, err := h.sessions.Issue(w, user.ID)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, loginResponse{
		User:  auth.Identity{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		Token: token,
	})
	return nil
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	h.sessions.Clear(w)
	httpx.JSON(w, http.StatusOK, success)
	return nil
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	httpx.JSON(w, http.StatusOK, caller)
	return nil
}
