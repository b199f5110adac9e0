package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks structs against their `validate` tags and reports
// violations keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the project rules registered:
// emailorempty, urlorempty, numeric comparison on Amount and pass-through
// of Nullable/NotNull update fields.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		a, ok := f.Interface().(Amount)
		if !ok {
			return nil
		}
		out, _ := a.Cents().Float64()
		return out
	}, Amount{})
	v.RegisterCustomTypeFunc(partialValue,
		Nullable[string]{},
		NotNull[string]{},
		NotNull[bool]{},
		NotNull[Amount]{},
		NotNull[Date]{},
	)
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(Date)
		if !ok {
			return nil
		}
		return d.Time
	}, Date{})
	mustRegister(v, "emailorempty", orEmpty(v, "email"))
	mustRegister(v, "urlorempty", orEmpty(v, "url"))
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// orEmpty accepts the empty string or anything satisfying rule.
func orEmpty(v *validator.Validate, rule string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, rule) == nil
	}
}

// Struct validates s. A nil result means s is valid.
func (val *Validator) Struct(s any) Violations {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{"body": "is invalid"}
	}
	out := Violations{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe), message(fe))
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "email", "emailorempty":
		return "must be a valid email"
	case "url", "urlorempty":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
