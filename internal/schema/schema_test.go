package schema

import (
	"errors"
	"testing"

	"github.com/diewo77/go-srm/validation"
	"github.com/shopspring/decimal"
)

var v = validation.New()

func check(t *testing.T, body string, dst any) validation.Violations {
	t.Helper()
	if err := validation.DecodeBytes([]byte(body), dst); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return v.Struct(dst)
}

func TestCreateSellerInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid []string
	}{
		{"minimal", `{"businessName":"Acme"}`, nil},
		{"empty emails allowed", `{"businessName":"Acme","email":"","accountManagerEmail":""}`, nil},
		{"null email allowed", `{"businessName":"Acme","email":null}`, nil},
		{"missing name", `{"contactName":"Bob"}`, []string{"businessName"}},
		{"bad email", `{"businessName":"Acme","email":"not-an-email"}`, []string{"email"}},
		{"long phone", `{"businessName":"Acme","phone":"123456789012345678901"}`, []string{"phone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateSellerInput
			got := check(t, tt.body, &in)
			if len(got) != len(tt.invalid) {
				t.Fatalf("violations = %v, want fields %v", got, tt.invalid)
			}
			for _, f := range tt.invalid {
				if got[f] == "" {
					t.Errorf("expected violation on %s, got %v", f, got)
				}
			}
		})
	}
}

func TestUpdateSellerInputPartial(t *testing.T) {
	var empty UpdateSellerInput
	if got := check(t, `{}`, &empty); !got.Empty() {
		t.Fatalf("empty update should be valid: %v", got)
	}
	if c := empty.Changes(); len(c) != 0 {
		t.Fatalf("expected no changes, got %v", c)
	}

	var some UpdateSellerInput
	if got := check(t, `{"phone":"555","serviceNote":""}`, &some); !got.Empty() {
		t.Fatalf("subset update should be valid: %v", got)
	}
	c := some.Changes()
	if len(c) != 2 || c["phone"] != "555" || c["service_note"] != "" {
		t.Fatalf("unexpected changes %v", c)
	}

	var bad UpdateSellerInput
	if got := check(t, `{"email":"not-an-email"}`, &bad); got["email"] == "" {
		t.Fatalf("present invalid email must be rejected: %v", got)
	}

	var cleared UpdateSellerInput
	if got := check(t, `{"contactName":null,"email":null}`, &cleared); !got.Empty() {
		t.Fatalf("null on nullable fields should be valid: %v", got)
	}
	c = cleared.Changes()
	if len(c) != 2 || c["contact_name"] != nil || c["email"] != nil {
		t.Fatalf("expected contact_name and email cleared, got %v", c)
	}
	if _, ok := c["contact_name"]; !ok {
		t.Fatalf("contact_name missing from %v", c)
	}

	var nullName UpdateSellerInput
	err := validation.DecodeBytes([]byte(`{"businessName":null}`), &nullName)
	var viol validation.Violations
	if !errors.As(err, &viol) || viol["businessName"] != "must not be null" {
		t.Fatalf("null businessName should be rejected, got %v", err)
	}
}

func TestCreatePaymentInput(t *testing.T) {
	for _, amount := range []string{"0", "-10", "0.001", "1e20"} {
		var in CreatePaymentInput
		got := check(t, `{"amount":`+amount+`,"paymentDate":"2024-01-01","proofOfPayment":"https://x/p.png"}`, &in)
		if got["amount"] == "" {
			t.Errorf("amount %s should be rejected, got %v", amount, got)
		}
	}

	var quoted CreatePaymentInput
	err := validation.DecodeBytes([]byte(`{"amount":"12.5","paymentDate":"2024-01-01","proofOfPayment":"p"}`), &quoted)
	var typeErr validation.Violations
	if !errors.As(err, &typeErr) || typeErr["amount"] != "must be a number" {
		t.Fatalf("quoted amount should be a type violation, got %v", err)
	}

	var partial UpdatePaymentInput
	if got := check(t, `{"amount":10.999,"reference":null}`, &partial); !got.Empty() {
		t.Fatalf("update amount with 3 decimals should be accepted, got %v", got)
	}
	c := partial.Changes()
	if amount, ok := c["amount"].(decimal.Decimal); !ok || amount.StringFixed(2) != "11.00" {
		t.Fatalf("amount should be stored rounded to cents, got %v", c["amount"])
	}
	if v, ok := c["reference"]; !ok || v != nil {
		t.Fatalf("null reference should clear the column, got %v", c)
	}

	var ok CreatePaymentInput
	got := check(t, `{"amount":1250.5,"paymentDate":"2024-01-01T09:00:00Z","proofOfPayment":"https://x/p.png"}`, &ok)
	if !got.Empty() {
		t.Fatalf("expected valid payment, got %v", got)
	}
	p := ok.Payment("seller-1")
	if p.Amount.StringFixed(2) != "1250.50" || p.PaymentDate.Year() != 2024 || p.SellerID != "seller-1" {
		t.Fatalf("unexpected model %+v", p)
	}

	var missing CreatePaymentInput
	got = check(t, `{"amount":5}`, &missing)
	if got["paymentDate"] == "" || got["proofOfPayment"] == "" {
		t.Fatalf("expected required violations, got %v", got)
	}
}

func TestDocumentAndProposalURLs(t *testing.T) {
	var doc CreateDocumentInput
	if got := check(t, `{"fileName":"a.pdf","fileUrl":"not a url","tags":""}`, &doc); got["fileUrl"] == "" {
		t.Fatalf("expected fileUrl violation, got %v", got)
	}
	var untagged CreateDocumentInput
	if got := check(t, `{"fileName":"a.pdf","fileUrl":"https://cdn.example.com/a.pdf"}`, &untagged); got["tags"] == "" {
		t.Fatalf("tags is required, got %v", got)
	}
	var emptyTags CreateDocumentInput
	if got := check(t, `{"fileName":"a.pdf","fileUrl":"https://cdn.example.com/a.pdf","tags":""}`, &emptyTags); !got.Empty() {
		t.Fatalf("empty tags should be valid, got %v", got)
	}
	if d := emptyTags.Document("s1"); d.Tags != "" || d.SellerID != "s1" {
		t.Fatalf("unexpected document %+v", d)
	}

	var prop CreateProposalInput
	if got := check(t, `{"fileName":"p.pdf","fileUrl":"https://cdn.example.com/p.pdf"}`, &prop); !got.Empty() {
		t.Fatalf("expected valid proposal, got %v", got)
	}
	if prop.Shareable {
		t.Fatal("shareable defaults to false")
	}
}

func TestNoteAndLifecycle(t *testing.T) {
	var note CreateNoteInput
	if got := check(t, `{"content":"","attachmentUrl":""}`, &note); got["content"] == "" || got["attachmentUrl"] != "" {
		t.Fatalf("unexpected violations %v", got)
	}
	var lc LifecycleInput
	if got := check(t, `{"marketplace":"Amazon"}`, &lc); got["stage"] == "" {
		t.Fatalf("stage is required: %v", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("got %q", got)
	}
}
