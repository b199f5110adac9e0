package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/schema"
	"github.com/diewo77/go-srm/internal/services"
)

// UserHandler manages account managers and the caller's own password.
type UserHandler struct {
	Deps
	users *services.UserService
}

func NewUserHandler(d Deps, users *services.UserService) *UserHandler {
	return &UserHandler{Deps: d, users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	users, err := h.users.ListAccountManagers(r.Context())
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, users)
	return nil
}

// Create adds an account manager and returns its temporary password. This
// response is the only place the password is ever shown.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var in schema.CreateUserInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	created, err := h.users.CreateAccountManager(r.Context(), in.NormalizedEmail(), in.Name)
	if err != nil {
		return userError(err)
	}
	h.record(r, caller, audit.CreateUser, "User", created.ID, "Created account manager: "+created.Email)
	httpx.JSON(w, http.StatusCreated, created)
	return nil
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	deleted, err := h.users.Delete(r.Context(), caller.ID, r.PathValue("id"))
	if err != nil {
		return userError(err)
	}
	h.record(r, caller, audit.DeleteUser, "User", deleted.ID, "Deleted account manager: "+deleted.Email)
	httpx.JSON(w, http.StatusOK, success)
	return nil
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var in schema.ChangePasswordInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.users.ChangePassword(r.Context(), caller.ID, in.CurrentPassword, in.NewPassword); err != nil {
		return userError(err)
	}
	h.record(r, caller, audit.ChangePassword, "User", caller.ID, "Changed password")
	httpx.JSON(w, http.StatusOK, success)
	return nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return httpx.Conflict("User with this email already exists")
	case errors.Is(err, services.ErrSelfDelete):
		return httpx.InvalidOperation("Cannot delete your own account")
	case errors.Is(err, services.ErrAdminDelete):
		return httpx.InvalidOperation("Cannot delete admin users")
	case errors.Is(err, services.ErrUserNotFound):
		return httpx.NotFound("User")
	case errors.Is(err, services.ErrAccountNotFound):
		return httpx.NotFound("Account")
	case errors.Is(err, services.ErrWrongPassword):
		return httpx.InvalidOperation("Current password is incorrect")
	case errors.Is(err, services.ErrInvalidCredentials):
		return &httpx.Error{Kind: httpx.KindUnauthenticated, Code: "invalid_credentials", Message: "Invalid email or password"}
	default:
		return err
	}
}
