package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

// DocumentHandler serves seller documents. Files are stored elsewhere; only
// their name and URL are recorded.
type DocumentHandler struct {
	Deps
}

func NewDocumentHandler(d Deps) *DocumentHandler {
	return &DocumentHandler{Deps: d}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	docs := []models.Document{}
	err := h.DB.WithContext(r.Context()).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, docs)
	return nil
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	var in schema.CreateDocumentInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	doc := in.Document(sellerID)
	if err := h.DB.WithContext(r.Context()).Create(&doc).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.UploadDocument, "Document", doc.ID, "Uploaded document: "+doc.FileName)
	httpx.JSON(w, http.StatusCreated, doc)
	return nil
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var doc models.Document
	if err := h.find(r.Context(), &doc, r.PathValue("id"), "Document"); err != nil {
		return err
	}
	var in schema.UpdateDocumentInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.update(r.Context(), &doc, in.Changes()); err != nil {
		return err
	}
	h.record(r, caller, audit.UpdateDocument, "Document", doc.ID, "Updated document: "+doc.FileName)
	httpx.JSON(w, http.StatusOK, doc)
	return nil
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var doc models.Document
	if err := h.find(r.Context(), &doc, r.PathValue("id"), "Document"); err != nil {
		return err
	}
	if err := h.DB.WithContext(r.Context()).Delete(&doc).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.DeleteDocument, "Document", doc.ID, "Deleted document: "+doc.FileName)
	httpx.JSON(w, http.StatusOK, success)
	return nil
}
