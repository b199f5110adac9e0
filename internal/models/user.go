package models

import "time"

const (
	RoleAdmin          = "Admin"
	RoleAccountManager = "Account Manager"
)

type User struct {
	Base
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:32;not null;default:'Account Manager'" json:"role"`
	UpdatedAt time.Time `json:"updatedAt"`

	Credential *Credential `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Credential is the password record backing email/password login. A user
// has at most one.
type Credential struct {
	Base
	UserID       string    `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
