package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

// LifecycleHandler serves the append-only stage history of a seller.
type LifecycleHandler struct {
	Deps
}

func NewLifecycleHandler(d Deps) *LifecycleHandler {
	return &LifecycleHandler{Deps: d}
}

func (h *LifecycleHandler) history(r *http.Request) ([]models.LifecycleHistory, error) {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return nil, err
	}
	entries := []models.LifecycleHistory{}
	err := h.DB.WithContext(r.Context()).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").Order("id DESC").
		Find(&entries).Error
	return entries, err
}

func (h *LifecycleHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	entries, err := h.history(r)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, entries)
	return nil
}

// Current returns the latest entry per marketplace.
func (h *LifecycleHandler) Current(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	entries, err := h.history(r)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, CurrentStages(entries))
	return nil
}

// Append records a new stage. Earlier entries are never modified.
func (h *LifecycleHandler) Append(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	var in schema.LifecycleInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	entry := in.Entry(sellerID)
	if err := h.DB.WithContext(r.Context()).Create(&entry).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.UpdateLifecycle, "LifecycleHistory", entry.ID,
		"Updated lifecycle: "+entry.Marketplace+" -> "+entry.Stage)
	httpx.JSON(w, http.StatusCreated, entry)
	return nil
}

// CurrentStages keeps the first entry seen for each marketplace, so entries
// must be ordered newest first.
func CurrentStages(entries []models.LifecycleHistory) []models.LifecycleHistory {
	seen := make(map[string]bool, len(entries))
	current := []models.LifecycleHistory{}
	for _, e := range entries {
		if seen[e.Marketplace] {
			continue
		}
		seen[e.Marketplace] = true
		current = append(current, e)
	}
	return current
}
