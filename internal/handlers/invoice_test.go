package handlers_test

import (
	"bytes"
	"net/http"
	"regexp"
	"testing"

	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoiceNumber = regexp.MustCompile(`^INV-[0-9A-Z]+-[0-9A-Z]{4}$`)

func TestInvoiceCreateAndList(t *testing.T) {
	a := newTestApp(t)
	seller := a.createSeller("Acme")
	pay := a.createPayment(seller.ID)
	path := "/payments/" + pay.ID + "/invoices"

	var created []models.Invoice
	for i := 0; i < 2; i++ {
		before := len(a.auditLogs())
		rec := a.do(http.MethodPost, path, nil, &a.manager)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		inv := decode[models.Invoice](t, rec)
		assert.Regexp(t, invoiceNumber, inv.InvoiceNumber)
		assert.Equal(t, "/invoices/"+inv.InvoiceNumber+".pdf", inv.PdfURL)
		entry := a.requireOneAudit(before, audit.CreateInvoice, inv.ID)
		assert.Equal(t, "Created invoice: "+inv.InvoiceNumber, *entry.Details)
		created = append(created, inv)
	}
	assert.NotEqual(t, created[0].InvoiceNumber, created[1].InvoiceNumber)

	rec := a.do(http.MethodGet, path, nil, &a.manager)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Invoice](t, rec), 2, "several invoices per payment are allowed")

	rec = a.do(http.MethodGet, "/invoices/"+created[0].ID, nil, &a.manager)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created[0].InvoiceNumber, decode[models.Invoice](t, rec).InvoiceNumber)
}

func TestInvoiceMissingPayment(t *testing.T) {
	a := newTestApp(t)
	rec := a.do(http.MethodPost, "/payments/missing/invoices", nil, &a.manager)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Payment not found", decode[httpx.ErrorResponse](t, rec).Error)

	rec = a.do(http.MethodGet, "/invoices/missing/download", nil, &a.manager)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Invoice not found", decode[httpx.ErrorResponse](t, rec).Error)
	assert.Empty(t, a.auditLogs())
}

func TestInvoiceDownload(t *testing.T) {
	a := newTestApp(t)
	seller := a.createSeller("Acme")
	pay := a.createPayment(seller.ID)
	rec := a.do(http.MethodPost, "/payments/"+pay.ID+"/invoices", nil, &a.manager)
	require.Equal(t, http.StatusCreated, rec.Code)
	inv := decode[models.Invoice](t, rec)

	before := len(a.auditLogs())
	rec = a.do(http.MethodGet, "/invoices/"+inv.ID+"/download", nil, &a.manager)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice-`+inv.InvoiceNumber+`.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	entry := a.requireOneAudit(before, audit.DownloadInvoice, inv.ID)
	assert.Equal(t, "Downloaded invoice: "+inv.InvoiceNumber, *entry.Details)

	// rendered again, not cached
	rec = a.do(http.MethodGet, "/invoices/"+inv.ID+"/download", nil, &a.manager)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, a.auditLogs(), before+2)
}
