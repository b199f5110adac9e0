package models

// AuditLog is an append-only record of a mutating action. UserID is not a
// foreign key so entries outlive deleted users.
type AuditLog struct {
	Base
	UserID     string  `gorm:"size:36;not null;index" json:"userId"`
	Action     string  `gorm:"size:64;not null" json:"action"`
	EntityType string  `gorm:"size:64;not null" json:"entityType"`
	EntityID   *string `gorm:"size:36" json:"entityId"`
	Details    *string `gorm:"size:1000" json:"details"`
}
