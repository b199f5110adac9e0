package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

// NoteHandler serves internal notes, which are never shown to sellers.
type NoteHandler struct {
	Deps
}

func NewNoteHandler(d Deps) *NoteHandler {
	return &NoteHandler{Deps: d}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	notes := []models.InternalNote{}
	err := h.DB.WithContext(r.Context()).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, notes)
	return nil
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	var in schema.CreateNoteInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	note := in.Note(sellerID)
	if err := h.DB.WithContext(r.Context()).Create(&note).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.CreateNote, "Note", note.ID, "Created note")
	httpx.JSON(w, http.StatusCreated, note)
	return nil
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var note models.InternalNote
	if err := h.find(r.Context(), &note, r.PathValue("id"), "Note"); err != nil {
		return err
	}
	var in schema.UpdateNoteInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.update(r.Context(), &note, in.Changes()); err != nil {
		return err
	}
	h.record(r, caller, audit.UpdateNote, "Note", note.ID, "Updated note")
	httpx.JSON(w, http.StatusOK, note)
	return nil
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var note models.InternalNote
	if err := h.find(r.Context(), &note, r.PathValue("id"), "Note"); err != nil {
		return err
	}
	if err := h.DB.WithContext(r.Context()).Delete(&note).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.DeleteNote, "Note", note.ID, "Deleted note")
	httpx.JSON(w, http.StatusOK, success)
	return nil
}
