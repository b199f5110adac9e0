// Package models holds the gorm-mapped entities of the seller back office.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// amounts are numbers on the wire, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Base carries the identifier and creation time shared by every entity.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&User{}, &Credential{},
		&Seller{}, &Document{}, &Payment{}, &Invoice{},
		&Proposal{}, &LifecycleHistory{}, &InternalNote{},
		&AuditLog{},
	}
}
