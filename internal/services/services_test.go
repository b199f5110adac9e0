package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/diewo77/go-srm/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPayment(t *testing.T, db *gorm.DB) (models.Seller, models.Payment) {
	t.Helper()
	email := "ops@acme.test"
	ref := "UTR-1"
	seller := models.Seller{BusinessName: "Acme", Email: &email}
	if err := db.Create(&seller).Error; err != nil {
		t.Fatalf("seller: %v", err)
	}
	pay := models.Payment{
		SellerID:       seller.ID,
		Amount:         decimal.RequireFromString("99.9"),
		PaymentDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Reference:      &ref,
		ProofOfPayment: "https://files.test/proof.png",
	}
	if err := db.Create(&pay).Error; err != nil {
		t.Fatalf("payment: %v", err)
	}
	return seller, pay
}
