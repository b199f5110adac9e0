package handlers

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
)

type PaymentHandler struct {
	Deps
}

func NewPaymentHandler(d Deps) *PaymentHandler {
	return &PaymentHandler{Deps: d}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	payments := []models.Payment{}
	err := h.DB.WithContext(r.Context()).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, payments)
	return nil
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	sellerID := r.PathValue("id")
	if err := h.exists(r.Context(), &models.Seller{}, sellerID, "Seller"); err != nil {
		return err
	}
	var in schema.CreatePaymentInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	pay := in.Payment(sellerID)
	if err := h.DB.WithContext(r.Context()).Create(&pay).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.CreatePayment, "Payment", pay.ID, "Created payment: "+pay.Amount.StringFixed(2))
	httpx.JSON(w, http.StatusCreated, pay)
	return nil
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	var pay models.Payment
	if err := h.find(r.Context(), &pay, r.PathValue("id"), "Payment"); err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, pay)
	return nil
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var pay models.Payment
	if err := h.find(r.Context(), &pay, r.PathValue("id"), "Payment"); err != nil {
		return err
	}
	var in schema.UpdatePaymentInput
	if err := h.bind(r, &in); err != nil {
		return err
	}
	if err := h.update(r.Context(), &pay, in.Changes()); err != nil {
		return err
	}
	h.record(r, caller, audit.UpdatePayment, "Payment", pay.ID, "Updated payment: "+pay.Amount.StringFixed(2))
	httpx.JSON(w, http.StatusOK, pay)
	return nil
}

// Delete removes the payment and, through the foreign key, its invoices.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	var pay models.Payment
	if err := h.find(r.Context(), &pay, r.PathValue("id"), "Payment"); err != nil {
		return err
	}
	if err := h.DB.WithContext(r.Context()).Delete(&pay).Error; err != nil {
		return err
	}
	h.record(r, caller, audit.DeletePayment, "Payment", pay.ID, "Deleted payment: "+pay.Amount.StringFixed(2))
	httpx.JSON(w, http.StatusOK, success)
	return nil
}
