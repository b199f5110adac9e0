package pdf_test

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/diewo77/go-srm/pdf"
	"github.com/shopspring/decimal"
)

var timestampField = regexp.MustCompile(`/(CreationDate|ModDate) \([^)]*\)`)

func sample() pdf.InvoiceData {
	return pdf.InvoiceData{
		Company:     pdf.DefaultCompany(),
		Number:      "INV-LZ3K9Q1A-7XQ2",
		IssuedAt:    time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		PaymentDate: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
		BillTo: pdf.Party{
			BusinessName: "Acme Exports",
			ContactName:  "Zoë Müller",
			Email:        "ops@acme.test",
		},
		Amount:    decimal.RequireFromString("1250.5"),
		Reference: "UTR-99812",
	}
}

func TestRenderInvoice_ProducesPDF(t *testing.T) {
	out, err := pdf.RenderInvoice(sample(), time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:8])
	}
}

func TestRenderInvoice_DeterministicApartFromTimestamp(t *testing.T) {
	a, err := pdf.RenderInvoice(sample(), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render a: %v", err)
	}
	b, err := pdf.RenderInvoice(sample(), time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("render b: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different generation times should be visible in the output")
	}
	na := timestampField.ReplaceAll(a, nil)
	nb := timestampField.ReplaceAll(b, nil)
	if !bytes.Equal(na, nb) {
		t.Fatal("renders differ outside the timestamp fields")
	}
}

func TestRenderInvoice_ContentDependsOnData(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a, _ := pdf.RenderInvoice(sample(), at)
	other := sample()
	other.Reference = ""
	b, _ := pdf.RenderInvoice(other, at)
	if bytes.Equal(a, b) {
		t.Fatal("dropping the reference line should change the document")
	}
}

// pageText inflates every stream in a rendered document and concatenates
// the results.
func pageText(t *testing.T, doc []byte) []byte {
	t.Helper()
	var out []byte
	rest := doc
	for {
		start := bytes.Index(rest, []byte("stream\n"))
		if start < 0 {
			return out
		}
		rest = rest[start+len("stream\n"):]
		end := bytes.Index(rest, []byte("\nendstream"))
		if end < 0 {
			return out
		}
		zr, err := zlib.NewReader(bytes.NewReader(rest[:end]))
		if err == nil {
			data, _ := io.ReadAll(zr)
			out = append(out, data...)
		}
		rest = rest[end+len("\nendstream"):]
	}
}

// utf16BE is how text shown with a UTF-8 font appears in a content stream.
func utf16BE(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = append(b, byte(u>>8), byte(u))
	}
	return b
}

func TestRenderInvoice_NonLatinNames(t *testing.T) {
	names := []string{"Łódź Trading", "İstanbul Şirketi", "ООО Ромашка"}
	for _, name := range names {
		d := sample()
		d.BillTo.BusinessName = name
		out, err := pdf.RenderInvoice(d, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("%s: render: %v", name, err)
		}
		if !bytes.Contains(pageText(t, out), utf16BE(name)) {
			t.Errorf("%s: business name not printed verbatim", name)
		}
	}
}
