package models

import "time"

type Seller struct {
	Base
	BusinessName         string    `gorm:"size:255;not null;index" json:"businessName"`
	ContactName          *string   `gorm:"size:255" json:"contactName"`
	Email                *string   `gorm:"size:255" json:"email"`
	Phone                *string   `gorm:"size:20" json:"phone"`
	Address              *string   `gorm:"size:500" json:"address"`
	AccountManagerName   *string   `gorm:"size:255" json:"accountManagerName"`
	AccountManagerMobile *string   `gorm:"size:20" json:"accountManagerMobile"`
	AccountManagerEmail  *string   `gorm:"size:255" json:"accountManagerEmail"`
	ServiceNote          *string   `gorm:"size:2000" json:"serviceNote"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Documents []Document         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Payments  []Payment          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Proposals []Proposal         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notes     []InternalNote     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Lifecycle []LifecycleHistory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Document struct {
	Base
	SellerID  string    `gorm:"size:36;not null;index" json:"sellerId"`
	FileName  string    `gorm:"size:255;not null" json:"fileName"`
	FileURL   string    `gorm:"size:2048;not null" json:"fileUrl"`
	Tags      string    `gorm:"size:500" json:"tags"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Proposal struct {
	Base
	SellerID  string    `gorm:"size:36;not null;index" json:"sellerId"`
	FileName  string    `gorm:"size:255;not null" json:"fileName"`
	FileURL   string    `gorm:"size:2048;not null" json:"fileUrl"`
	Shareable bool      `gorm:"not null;default:false" json:"shareable"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InternalNote struct {
	Base
	SellerID      string    `gorm:"size:36;not null;index" json:"sellerId"`
	Content       string    `gorm:"size:5000;not null" json:"content"`
	AttachmentURL *string   `gorm:"size:2048" json:"attachmentUrl"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LifecycleHistory is one append-only stage transition of a seller on a
// marketplace. The latest entry per marketplace is the current stage.
type LifecycleHistory struct {
	Base
	SellerID    string `gorm:"size:36;not null;index:idx_lifecycle_seller_marketplace" json:"sellerId"`
	Marketplace string `gorm:"size:100;not null;index:idx_lifecycle_seller_marketplace" json:"marketplace"`
	Stage       string `gorm:"size:100;not null" json:"stage"`
}
