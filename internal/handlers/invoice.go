package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/services"
)

type InvoiceHandler struct {
	Deps
	invoices *services.InvoiceService
}

func NewInvoiceHandler(d Deps, invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Deps: d, invoices: invoices}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	invoices, err := h.invoices.List(r.Context(), r.PathValue("id"))
	if err != nil {
		return invoiceError(err)
	}
	httpx.JSON(w, http.StatusOK, invoices)
	return nil
}

// Create issues an invoice for the payment in the path. No body is read.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	inv, err := h.invoices.Create(r.Context(), r.PathValue("id"))
	if err != nil {
		return invoiceError(err)
	}
	h.record(r, caller, audit.CreateInvoice, "Invoice", inv.ID, "Created invoice: "+inv.InvoiceNumber)
	httpx.JSON(w, http.StatusCreated, inv)
	return nil
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	inv, err := h.invoices.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		return invoiceError(err)
	}
	httpx.JSON(w, http.StatusOK, inv)
	return nil
}

// Download renders the invoice PDF on every call.
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request, caller auth.Identity) error {
	inv, body, err := h.invoices.Render(r.Context(), r.PathValue("id"))
	if err != nil {
		return invoiceError(err)
	}
	h.record(r, caller, audit.DownloadInvoice, "Invoice", inv.ID, "Downloaded invoice: "+inv.InvoiceNumber)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+inv.InvoiceNumber+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return nil
}

func invoiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		return httpx.NotFound("Payment")
	case errors.Is(err, services.ErrInvoiceNotFound):
		return httpx.NotFound("Invoice")
	case errors.Is(err, services.ErrInvoiceNumberConflict):
		return httpx.Conflict("Invoice number already exists")
	case errors.Is(err, services.ErrRenderFailed):
		return httpx.Internal("Failed to generate invoice", err)
	default:
		return err
	}
}
