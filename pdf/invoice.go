// Package pdf renders payment invoices with a fixed-coordinate layout.
package pdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Company is the issuer block printed under the title.
type Company struct {
	Name    string
	Address []string
	Email   string
	Phone   string
}

// DefaultCompany is the issuer used when none is configured.
func DefaultCompany() Company {
	return Company{
		Name:    "NEXANODE TECHNOLOGIES",
		Address: []string{"601, solaris cube", "Surat, Gujarat 395007"},
		Email:   "info@unisouk.com",
		Phone:   "(123) 456-7890",
	}
}

// Party is the bill-to block. Empty fields print as blank lines.
type Party struct {
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	Address      string
}

// InvoiceData is everything printed on an invoice.
type InvoiceData struct {
	Company     Company
	Number      string
	IssuedAt    time.Time
	PaymentDate time.Time
	BillTo      Party
	Amount      decimal.Decimal
	Reference   string
}

// fontFamily is DejaVu Sans Condensed, which covers Latin Extended,
// Greek and Cyrillic.
const fontFamily = "DejaVu"

//go:embed fonts/DejaVuSansCondensed.ttf
var fontTTF []byte

const (
	margin     = 50.0
	pageWidth  = 612.0
	rightEdge  = 550.0
	detailsX   = 350.0
	detailsTop = 150.0
	billToTop  = 250.0
	tableTop   = 380.0
	footerTop  = 700.0
	dateLayout = "1/2/2006"
)

// RenderInvoice lays the invoice out on a single Letter page. generatedAt is
// the only wall-clock value embedded; identical data and generatedAt yield
// identical bytes.
func RenderInvoice(d InvoiceData, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt.UTC())
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Invoice "+d.Number, true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontTTF)
	pdf.AddPage()

	text := func(x, top, size float64, s string) {
		pdf.SetFontSize(size)
		pdf.SetXY(x, top)
		pdf.CellFormat(0, size*1.2, s, "", 0, "L", false, 0, "")
	}
	centered := func(top, size float64, s string) {
		pdf.SetFontSize(size)
		pdf.SetXY(margin, top)
		pdf.CellFormat(pageWidth-2*margin, size*1.2, s, "", 0, "C", false, 0, "")
	}
	// lines prints each entry at x, stacking downwards from top.
	lines := func(x, top, size float64, entries ...string) {
		for i, s := range entries {
			text(x, top+float64(i)*size*1.2, size, s)
		}
	}

	pdf.SetFont(fontFamily, "", 10)

	centered(margin, 20, "INVOICE")

	companyTop := margin + 48
	text(margin, companyTop, 10, d.Company.Name)
	company := append([]string{}, d.Company.Address...)
	if d.Company.Email != "" {
		company = append(company, "Email: "+d.Company.Email)
	}
	if d.Company.Phone != "" {
		company = append(company, "Phone: "+d.Company.Phone)
	}
	lines(margin, companyTop+12, 9, company...)

	lines(detailsX, detailsTop, 10,
		"Invoice Number: "+d.Number,
		"Date: "+d.IssuedAt.Format(dateLayout),
		"Payment Date: "+d.PaymentDate.Format(dateLayout),
	)

	text(margin, billToTop, 12, "Bill To:")
	lines(margin, billToTop+15, 10,
		d.BillTo.BusinessName,
		d.BillTo.ContactName,
		d.BillTo.Email,
		d.BillTo.Phone,
		d.BillTo.Address,
	)

	text(50, tableTop, 10, "Description")
	text(300, tableTop, 10, "Quantity")
	text(400, tableTop, 10, "Price")
	text(480, tableTop, 10, "Amount")
	pdf.Line(margin, tableTop+15, rightEdge, tableTop+15)

	amount := d.Amount.StringFixed(2)
	itemY := tableTop + 30
	text(50, itemY, 9, "Payment Received")
	text(300, itemY, 9, "1")
	text(400, itemY, 9, amount)
	text(480, itemY, 9, amount)

	pdf.Line(margin, itemY+30, rightEdge, itemY+30)
	text(400, itemY+45, 12, "Total:")
	text(480, itemY+45, 12, amount)

	if d.Reference != "" {
		text(50, itemY+80, 9, "Reference: "+d.Reference)
	}

	centered(footerTop, 8, "Thank you for your business!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", d.Number, err)
	}
	return buf.Bytes(), nil
}
