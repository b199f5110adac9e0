package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Unauthenticated(), http.StatusUnauthorized},
		{Forbidden(), http.StatusForbidden},
		{Invalid("x: bad", nil), http.StatusBadRequest},
		{MalformedJSON(), http.StatusBadRequest},
		{NotFound("Seller"), http.StatusNotFound},
		{Conflict("exists"), http.StatusConflict},
		{InvalidOperation("nope"), http.StatusBadRequest},
		{Internal("", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Code, func(t *testing.T) {
			if got := tc.err.Status(); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWriteErrorHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, Internal("", errors.New("pq: password authentication failed")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Internal server error" || body["code"] != "internal_error" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["details"]; ok {
		t.Fatalf("internal error must not carry details: %v", body)
	}
}

func TestNotFoundMessage(t *testing.T) {
	if msg := NotFound("Payment").Message; msg != "Payment not found" {
		t.Fatalf("got %q", msg)
	}
}
