package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/pdf"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceNumberConflict = errors.New("invoice number already taken")
	ErrRenderFailed          = errors.New("invoice rendering failed")
)

// DefaultNumberAttempts bounds how many numbers Create tries before giving up.
const DefaultNumberAttempts = 3

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NumberFunc produces a candidate invoice number.
type NumberFunc func() string

// FormatInvoiceNumber builds INV-<base36 unix ms>-<suffix>, upper case.
func FormatInvoiceNumber(t time.Time, suffix string) string {
	return "INV-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36)) + "-" + strings.ToUpper(suffix)
}

// GenerateInvoiceNumber returns a number unique with high probability; the
// unique index on invoices is the real guarantee.
func GenerateInvoiceNumber() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return FormatInvoiceNumber(time.Now(), string(suffix))
}

type InvoiceService struct {
	db       *gorm.DB
	next     NumberFunc
	attempts int
	company  pdf.Company
	now      func() time.Time
}

func NewInvoiceService(db *gorm.DB, company pdf.Company) *InvoiceService {
	return &InvoiceService{
		db:       db,
		next:     GenerateInvoiceNumber,
		attempts: DefaultNumberAttempts,
		company:  company,
		now:      time.Now,
	}
}

// WithNumbers replaces the number source.
func (s *InvoiceService) WithNumbers(fn NumberFunc) *InvoiceService {
	s.next = fn
	return s
}

// Create issues a new invoice for paymentID. A payment may carry several
// invoices. Number collisions are retried up to the attempt bound.
func (s *InvoiceService) Create(ctx context.Context, paymentID string) (models.Invoice, error) {
	db := s.db.WithContext(ctx)
	var n int64
	if err := db.Model(&models.Payment{}).Where("id = ?", paymentID).Count(&n).Error; err != nil {
		return models.Invoice{}, fmt.Errorf("lookup payment: %w", err)
	}
	if n == 0 {
		return models.Invoice{}, ErrPaymentNotFound
	}

	for attempt := 0; attempt < s.attempts; attempt++ {
		number := s.next()
		inv := models.Invoice{
			PaymentID:     paymentID,
			InvoiceNumber: number,
			PdfURL:        "/invoices/" + number + ".pdf",
		}
		err := db.Create(&inv).Error
		switch {
		case err == nil:
			return inv, nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			continue
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// payment deleted between the check and the insert
			return models.Invoice{}, ErrPaymentNotFound
		default:
			return models.Invoice{}, fmt.Errorf("create invoice: %w", err)
		}
	}
	return models.Invoice{}, ErrInvoiceNumberConflict
}

// List returns the invoices of a payment, newest first.
func (s *InvoiceService) List(ctx context.Context, paymentID string) ([]models.Invoice, error) {
	db := s.db.WithContext(ctx)
	var n int64
	if err := db.Model(&models.Payment{}).Where("id = ?", paymentID).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("lookup payment: %w", err)
	}
	if n == 0 {
		return nil, ErrPaymentNotFound
	}
	invoices := []models.Invoice{}
	err := db.Where("payment_id = ?", paymentID).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

// Get loads one invoice.
func (s *InvoiceService) Get(ctx context.Context, id string) (models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inv, ErrInvoiceNotFound
	}
	return inv, err
}

// Render loads the invoice with its payment and seller and renders the PDF.
// Nothing is cached; every call renders afresh.
func (s *InvoiceService) Render(ctx context.Context, id string) (models.Invoice, []byte, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return inv, nil, err
	}
	db := s.db.WithContext(ctx)
	var pay models.Payment
	if err := db.First(&pay, "id = ?", inv.PaymentID).Error; err != nil {
		return inv, nil, fmt.Errorf("load payment: %w", err)
	}
	var seller models.Seller
	if err := db.First(&seller, "id = ?", pay.SellerID).Error; err != nil {
		return inv, nil, fmt.Errorf("load seller: %w", err)
	}
	out, err := pdf.RenderInvoice(InvoiceData(s.company, inv, pay, seller), s.now())
	if err != nil {
		return inv, nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return inv, out, nil
}

// InvoiceData maps stored records onto the printed layout.
func InvoiceData(company pdf.Company, inv models.Invoice, pay models.Payment, seller models.Seller) pdf.InvoiceData {
	return pdf.InvoiceData{
		Company:     company,
		Number:      inv.InvoiceNumber,
		IssuedAt:    inv.CreatedAt,
		PaymentDate: pay.PaymentDate,
		BillTo: pdf.Party{
			BusinessName: seller.BusinessName,
			ContactName:  value(seller.ContactName),
			Email:        value(seller.Email),
			Phone:        value(seller.Phone),
			Address:      value(seller.Address),
		},
		Amount:    pay.Amount,
		Reference: value(pay.Reference),
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
