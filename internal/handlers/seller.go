package handlers

import (
	"net/http"
	"strings"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type SellerHandler struct {
	Deps
}

func NewSellerHandler(d Deps) *SellerHandler {
	return &SellerHandler{Deps: d}
}

// List returns sellers newest first, optionally filtered by a
// case-insensitive substring of the business name.
func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	db := h.DB.WithContext(r.Context())
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		db = db.Where(`LOWER(business_name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(q))+"%")
	}
	sellers := []models.Seller{}
	if err := db.Order("created_at DESC").Find(&sellers).Error; err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, sellers)
	return nil
}

func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var in schema.CreateSellerInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	seller := in.Seller()
	if err := h.DB.WithContext(r.Context()).Create(&seller).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.CreateSeller, "Seller", seller.ID, "Created seller: "+seller.BusinessName)
	httpx.JSON(w, http.StatusCreated, seller)
	return nil
}

func (h *SellerHandler) Get(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	var seller models.Seller
	if err := h.find(r.Context(), &seller, r.PathValue("id"), "Seller"); err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, seller)
	return nil
}

func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var seller models.Seller
	if err := h.find(r.Context(), &seller, r.PathValue("id"), "Seller"); err != nil {
		return err
	}
	var in schema.UpdateSellerInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.update(r.Context(), &seller, in.Changes()); err != nil {
		return err
	}
	h.record(r, caller, audit.UpdateSeller, "Seller", seller.ID, "Updated seller: "+seller.BusinessName)
	httpx.JSON(w, http.StatusOK, seller)
	return nil
}

// Delete removes the seller together with all of its records.
func (h *SellerHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var seller models.Seller
	if err := h.find(r.Context(), &seller, r.PathValue("id"), "Seller"); err != nil {
		return err
	}
	if err := h.DB.WithContext(r.Context()).Delete(&seller).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.DeleteSeller, "Seller", seller.ID, "Deleted seller: "+seller.BusinessName)
	httpx.JSON(w, http.StatusOK, success)
	return nil
}
