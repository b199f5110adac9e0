package schema

import (
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/validation"
)

type CreatePaymentInput struct {
	Amount         validation.Amount `json:"amount" validate:"gt=0,lt=1000000000000"`
	PaymentDate    validation.Date   `json:"paymentDate" validate:"required"`
	Reference      *string           `json:"reference" validate:"omitempty,max=255"`
	ProofOfPayment string            `json:"proofOfPayment" validate:"required,min=1"`
}

func (in CreatePaymentInput) Payment(sellerID string) models.Payment {
	return models.Payment{
		SellerID:       sellerID,
		Amount:         in.Amount.Cents(),
		PaymentDate:    in.PaymentDate.Time,
		Reference:      in.Reference,
		ProofOfPayment: in.ProofOfPayment,
	}
}

type UpdatePaymentInput struct {
	Amount         validation.NotNull[validation.Amount] `json:"amount" validate:"omitempty,gt=0,lt=1000000000000"`
	PaymentDate    validation.NotNull[validation.Date]   `json:"paymentDate"`
	Reference      validation.Nullable[string]           `json:"reference" validate:"omitempty,max=255"`
	ProofOfPayment validation.NotNull[string]            `json:"proofOfPayment" validate:"omitempty,min=1"`
}

func (in UpdatePaymentInput) Changes() map[string]any {
	c := changes{}
	if in.Amount.Set {
		c["amount"] = in.Amount.Value.Cents()
	}
	if in.PaymentDate.Set {
		c["payment_date"] = in.PaymentDate.Value.Time
	}
	setOrClear(c, "reference", in.Reference)
	set(c, "proof_of_payment", in.ProofOfPayment)
	return c
}
