package validation

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that must be written as a JSON number. Quoted
// numerals are rejected.
type Amount struct {
	decimal.Decimal
}

var amountType = reflect.TypeOf(Amount{})

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) == 0 || b[0] == '"' {
		return &json.UnmarshalTypeError{Value: "string", Type: amountType}
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: amountType}
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}

// Cents is the amount rounded half away from zero to two decimal places,
// the precision it is stored and compared at.
func (a Amount) Cents() decimal.Decimal {
	return a.Round(2)
}
