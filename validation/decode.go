package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// ErrMalformed is returned when the body is not parseable JSON at all.
var ErrMalformed = errors.New("malformed JSON body")

// Decode reads the request body into dst. It returns ErrMalformed for
// unparseable input and Violations when well-formed JSON has the wrong shape.
func Decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(body) > MaxBodyBytes {
		return fmt.Errorf("%w: body exceeds %d bytes", ErrMalformed, MaxBodyBytes)
	}
	return DecodeBytes(body, dst)
}

// DecodeBytes is Decode for an already-read body.
func DecodeBytes(body []byte, dst any) error {
	if !json.Valid(body) {
		return ErrMalformed
	}
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		if te.Field == "" {
			return Violations{"body": "must be a JSON object"}
		}
		if te.Value == "null" {
			return Violations{te.Field: "must not be null"}
		}
		return Violations{te.Field: typeMessage(te.Type)}
	}
	return Violations{"body": "has an invalid value"}
}

var dateType = reflect.TypeOf(Date{})

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}
	switch t {
	case dateType:
		return "must be a valid date"
	case amountType:
		return "must be a number"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	default:
		return "has an invalid type"
	}
}
