package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a manually recorded incoming payment.
type Payment struct {
	Base
	SellerID       string          `gorm:"size:36;not null;index" json:"sellerId"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	PaymentDate    time.Time       `gorm:"not null" json:"paymentDate"`
	Reference      *string         `gorm:"size:255" json:"reference"`
	ProofOfPayment string          `gorm:"size:2048;not null" json:"proofOfPayment"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Invoices []Invoice `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Invoice records that an invoice was issued for a payment. The PDF itself
// is rendered on demand and never stored.
type Invoice struct {
	Base
	PaymentID     string `gorm:"size:36;not null;index" json:"paymentId"`
	InvoiceNumber string `gorm:"size:32;uniqueIndex;not null" json:"invoiceNumber"`
	PdfURL        string `gorm:"size:255;not null" json:"pdfUrl"`
}
