// Package schema defines the request payloads accepted by the API together
// with their validation rules. Update payloads are partial: omitted fields
// are left untouched, null clears a Nullable field and is rejected on a
// NotNull one.
package schema

import (
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/validation"
)

type CreateSellerInput struct {
	BusinessName         string  `json:"businessName" validate:"required,min=1,max=255"`
	ContactName          *string `json:"contactName" validate:"omitempty,max=255"`
	Email                *string `json:"email" validate:"omitempty,emailorempty"`
	Phone                *string `json:"phone" validate:"omitempty,max=20"`
	Address              *string `json:"address" validate:"omitempty,max=500"`
	AccountManagerName   *string `json:"accountManagerName" validate:"omitempty,max=255"`
	AccountManagerMobile *string `json:"accountManagerMobile" validate:"omitempty,max=20"`
	AccountManagerEmail  *string `json:"accountManagerEmail" validate:"omitempty,emailorempty"`
	ServiceNote          *string `json:"serviceNote" validate:"omitempty,max=2000"`
}

func (in CreateSellerInput) Seller() models.Seller {
	return models.Seller{
		BusinessName:         in.BusinessName,
		ContactName:          in.ContactName,
		Email:                in.Email,
		Phone:                in.Phone,
		Address:              in.Address,
		AccountManagerName:   in.AccountManagerName,
		AccountManagerMobile: in.AccountManagerMobile,
		AccountManagerEmail:  in.AccountManagerEmail,
		ServiceNote:          in.ServiceNote,
	}
}

type UpdateSellerInput struct {
	BusinessName         validation.NotNull[string]  `json:"businessName" validate:"omitempty,min=1,max=255"`
	ContactName          validation.Nullable[string] `json:"contactName" validate:"omitempty,max=255"`
	Email                validation.Nullable[string] `json:"email" validate:"omitempty,emailorempty"`
	Phone                validation.Nullable[string] `json:"phone" validate:"omitempty,max=20"`
	Address              validation.Nullable[string] `json:"address" validate:"omitempty,max=500"`
	AccountManagerName   validation.Nullable[string] `json:"accountManagerName" validate:"omitempty,max=255"`
	AccountManagerMobile validation.Nullable[string] `json:"accountManagerMobile" validate:"omitempty,max=20"`
	AccountManagerEmail  validation.Nullable[string] `json:"accountManagerEmail" validate:"omitempty,emailorempty"`
	ServiceNote          validation.Nullable[string] `json:"serviceNote" validate:"omitempty,max=2000"`
}

// Changes returns the column updates for the fields that were supplied.
// Cleared fields map to nil so they are written as NULL.
func (in UpdateSellerInput) Changes() map[string]any {
	c := changes{}
	set(c, "business_name", in.BusinessName)
	setOrClear(c, "contact_name", in.ContactName)
	setOrClear(c, "email", in.Email)
	setOrClear(c, "phone", in.Phone)
	setOrClear(c, "address", in.Address)
	setOrClear(c, "account_manager_name", in.AccountManagerName)
	setOrClear(c, "account_manager_mobile", in.AccountManagerMobile)
	setOrClear(c, "account_manager_email", in.AccountManagerEmail)
	setOrClear(c, "service_note", in.ServiceNote)
	return c
}

type changes map[string]any

func set[T any](c changes, col string, f validation.NotNull[T]) {
	if f.Set {
		c[col] = f.Value
	}
}

func setOrClear[T any](c changes, col string, f validation.Nullable[T]) {
	switch {
	case f.Null:
		c[col] = nil
	case f.Set:
		c[col] = f.Value
	}
}
