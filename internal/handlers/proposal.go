package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

// ProposalHandler serves commercial proposals. Shareable proposals may be
// sent to the seller; the flag defaults to false.
type ProposalHandler struct {
	Deps
}

func NewProposalHandler(d Deps) *ProposalHandler {
	return &ProposalHandler{Deps: d}
}

func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	proposals := []models.Proposal{}
	err := h.DB.WithContext(r.Context()).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, proposals)
	return nil
}

func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	var in schema.CreateProposalInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	p := in.Proposal(sellerID)
	if err := h.DB.WithContext(r.Context()).Create(&p).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.CreateProposal, "Proposal", p.ID, "Created proposal: "+p.FileName)
	httpx.JSON(w, http.StatusCreated, p)
	return nil
}

func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var p models.Proposal
	if err := h.find(r.Context(), &p, r.PathValue("id"), "Proposal"); err != nil {
		return err
	}
	var in schema.UpdateProposalInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.update(r.Context(), &p, in.Changes()); err != nil {
		return err
	}
	h.record(r, caller, audit.UpdateProposal, "Proposal", p.ID, "Updated proposal: "+p.FileName)
	httpx.JSON(w, http.StatusOK, p)
	return nil
}

func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var p models.Proposal
	if err := h.find(r.Context(), &p, r.PathValue("id"), "Proposal"); err != nil {
		return err
	}
	if err := h.DB.WithContext(r.Context()).Delete(&p).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.DeleteProposal, "Proposal", p.ID, "Deleted proposal: "+p.FileName)
	httpx.JSON(w, http.StatusOK, success)
	return nil
}
