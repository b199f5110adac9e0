package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/go-srm/validation"
)

type sample struct {
	Name    string            `json:"name" validate:"required,min=1,max=5"`
	Email   *string           `json:"email" validate:"omitempty,emailorempty"`
	Link    *string           `json:"link" validate:"omitempty,urlorempty"`
	Amount  validation.Amount `json:"amount" validate:"gt=0,lt=1000000000000"`
	When    validation.Date   `json:"when" validate:"required"`
	Enabled *bool             `json:"enabled"`
}

func decode(t *testing.T, body string) (sample, error) {
	t.Helper()
	var s sample
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return s, validation.Decode(req, &s)
}

func TestDecode_MalformedVersusShape(t *testing.T) {
	for _, body := range []string{"", "{", `{"name":}`, `{"name":"a"} trailing`} {
		if _, err := decode(t, body); !errors.Is(err, validation.ErrMalformed) {
			t.Errorf("%q: expected ErrMalformed, got %v", body, err)
		}
	}

	_, err := decode(t, `{"name": 12}`)
	var v validation.Violations
	if !errors.As(err, &v) {
		t.Fatalf("expected Violations, got %v", err)
	}
	if v["name"] != "must be a string" {
		t.Fatalf("unexpected violations %v", v)
	}

	_, err = decode(t, `["not","an","object"]`)
	if !errors.As(err, &v) || v["body"] == "" {
		t.Fatalf("expected body violation, got %v", err)
	}

	_, err = decode(t, `{"when": "yesterday"}`)
	if !errors.As(err, &v) || v["when"] != "must be a valid date" {
		t.Fatalf("expected date violation, got %v", err)
	}
}

func TestValidator_Struct(t *testing.T) {
	val := validation.New()

	s, err := decode(t, `{"name":"abc","email":"","link":"","amount":10.5,"when":"2024-03-01"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v := val.Struct(s); !v.Empty() {
		t.Fatalf("expected valid, got %v", v)
	}
	if !s.When.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", s.When)
	}

	s, _ = decode(t, `{"name":"toolong","email":"not-an-email","link":"nope","amount":0}`)
	v := val.Struct(s)
	want := map[string]string{
		"name":   "must be at most 5 characters",
		"email":  "must be a valid email",
		"link":   "must be a valid URL",
		"amount": "must be greater than 0",
		"when":   "is required",
	}
	for field, msg := range want {
		if v[field] != msg {
			t.Errorf("%s: got %q, want %q", field, v[field], msg)
		}
	}
}

func TestValidator_Amount(t *testing.T) {
	val := validation.New()
	tests := []struct {
		amount string
		want   string
	}{
		{"-3", "must be greater than 0"},
		{"0.001", "must be greater than 0"},
		{"0.005", ""},
		{"12.345", ""},
		{"1e20", "must be less than 1000000000000"},
		{"1000000000000", "must be less than 1000000000000"},
		{"999999999999.995", "must be less than 1000000000000"},
		{"999999999999.99", ""},
		{"12.50", ""},
		{"0.01", ""},
	}
	for _, tt := range tests {
		s, err := decode(t, `{"name":"a","amount":`+tt.amount+`,"when":"2024-01-01T10:00:00Z"}`)
		if err != nil {
			t.Fatalf("%s: decode: %v", tt.amount, err)
		}
		if got := val.Struct(s)["amount"]; got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmount_Cents(t *testing.T) {
	for in, want := range map[string]string{"10.999": "11.00", "0.005": "0.01", "12.344": "12.34", "7": "7.00"} {
		s, err := decode(t, `{"amount":`+in+`}`)
		if err != nil {
			t.Fatalf("%s: decode: %v", in, err)
		}
		if got := s.Amount.Cents().StringFixed(2); got != want {
			t.Errorf("%s: got %s, want %s", in, got, want)
		}
	}
}

type patch struct {
	Title  validation.NotNull[string]            `json:"title" validate:"omitempty,min=1,max=5"`
	Note   validation.Nullable[string]           `json:"note" validate:"omitempty,max=5"`
	Amount validation.NotNull[validation.Amount] `json:"amount" validate:"omitempty,gt=0"`
}

func TestPartialFields(t *testing.T) {
	val := validation.New()
	tests := []struct {
		body      string
		titleSet  bool
		noteSet   bool
		noteNull  bool
		violation string
	}{
		{body: `{}`},
		{body: `{"title":"abc"}`, titleSet: true},
		{body: `{"note":null}`, noteSet: true, noteNull: true},
		{body: `{"note":"hi"}`, noteSet: true},
		{body: `{"note":"too long"}`, noteSet: true, violation: "note"},
		{body: `{"title":""}`, titleSet: true, violation: "title"},
		{body: `{"amount":-1}`, violation: "amount"},
	}
	for _, tt := range tests {
		var p patch
		if err := validation.DecodeBytes([]byte(tt.body), &p); err != nil {
			t.Fatalf("%s: decode: %v", tt.body, err)
		}
		if p.Title.Set != tt.titleSet || p.Note.Set != tt.noteSet || p.Note.Null != tt.noteNull {
			t.Errorf("%s: unexpected state %+v", tt.body, p)
		}
		got := val.Struct(&p)
		if tt.violation == "" && !got.Empty() {
			t.Errorf("%s: unexpected violations %v", tt.body, got)
		}
		if tt.violation != "" && got[tt.violation] == "" {
			t.Errorf("%s: expected violation on %s, got %v", tt.body, tt.violation, got)
		}
	}

	for _, body := range []string{`{"title":null}`, `{"amount":null}`} {
		var p patch
		err := validation.DecodeBytes([]byte(body), &p)
		var v validation.Violations
		if !errors.As(err, &v) || len(v) != 1 {
			t.Fatalf("%s: expected a null violation, got %v", body, err)
		}
		for _, msg := range v {
			if msg != "must not be null" {
				t.Errorf("%s: got %q", body, msg)
			}
		}
	}
}

func TestDecode_AmountMustBeNumber(t *testing.T) {
	for _, body := range []string{`{"amount":"12.5"}`, `{"amount":"abc"}`, `{"amount":true}`} {
		_, err := decode(t, body)
		var v validation.Violations
		if !errors.As(err, &v) || v["amount"] != "must be a number" {
			t.Errorf("%s: expected amount type violation, got %v", body, err)
		}
	}
}

func TestViolations_Error(t *testing.T) {
	v := validation.Violations{}
	v.Add("email", "must be a valid email")
	v.Add("businessName", "is required")
	v.Add("email", "ignored")
	if got := v.Error(); got != "businessName: is required, email: must be a valid email" {
		t.Fatalf("got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-05-06", "2024-05-06T12:30:00Z", "2024-05-06T12:30:00.000Z", "2024-05-06T12:30:00"} {
		if _, err := validation.ParseDate(in); err != nil {
			t.Errorf("%s: %v", in, err)
		}
	}
	if _, err := validation.ParseDate("06/05/2024"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}
