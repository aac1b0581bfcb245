package gofpdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
)

func sampleQuote(items int) quote.Quote {
	q := quote.Quote{
		Number:   "QT-240307-000042",
		Date:     "2024-03-07",
		Customer: quote.Customer{Name: "Jane Doe", CompanyName: "Acme Foods"},
		Product:  product.DefaultCommercialPrint(),
		Notes:    "Two versions, shipped together.",
	}
	for i := 0; i < items; i++ {
		q.Items = append(q.Items, quote.OrderItem{
			Quantity:   1000 * (i + 1),
			TotalPrice: decimal.NewFromFloat(106.70 * float64(i+1)),
			Currency:   "CAD",
		})
	}
	return q
}

func newGenerator() *Generator {
	g := New("")
	g.Now = func() time.Time { return time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate(t *testing.T) {
	data, err := newGenerator().Generate(sampleQuote(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", data[:8])
	}
}

func TestGeneratePaginates(t *testing.T) {
	tests := []struct {
		items    int
		minPages int
		maxPages int
	}{
		{1, 1, 1},
		{30, 2, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.items), func(t *testing.T) {
			pdf, err := newGenerator().build(sampleQuote(tt.items))
			if err != nil {
				t.Fatalf("build() error = %v", err)
			}
			if got := pdf.PageCount(); got < tt.minPages || got > tt.maxPages {
				t.Errorf("PageCount() = %d, want %d..%d", got, tt.minPages, tt.maxPages)
			}
		})
	}
}

func TestGenerateSpecSheetAndUnicode(t *testing.T) {
	q := sampleQuote(2)
	q.SpecSheet = true
	q.Customer.Name = "Zoë “Quotes” Ślązak"
	q.Notes = strings.Repeat("Long note line with unicode → arrows. ", 40)
	data, err := newGenerator().Generate(q)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}

func TestGenerateEmptyQuote(t *testing.T) {
	if _, err := newGenerator().Generate(quote.Quote{Number: "QT-240307-000001", Customer: quote.Customer{Name: "x"}}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}

func TestItemHeading(t *testing.T) {
	if got := itemHeading(0, quote.OrderItem{Quantity: 1500}); got != "1. Quantity: 1,500 units" {
		t.Errorf("itemHeading() = %q", got)
	}
	if got := itemHeading(1, quote.OrderItem{Quantity: 500, Versions: 3}); got != "2. Quantity: 500 units • 3 versions" {
		t.Errorf("itemHeading() = %q", got)
	}
}

// plainText renders q without stream compression so the page text can be
// searched directly.
func plainText(t *testing.T, q quote.Quote) string {
	t.Helper()
	pdf, err := newGenerator().build(q)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	return buf.String()
}

func TestGenerateContent(t *testing.T) {
	q := sampleQuote(1)
	q.Notes = "Ship to dock 4"

	tests := []struct {
		name      string
		specSheet bool
		want      []string
		absent    []string
	}{
		{
			name: "quote",
			want: []string{
				"(QUOTE)",
				"(Quote Number: QT-240307-000042)",
				"(Customer: Jane Doe)",
				"(Company: Acme Foods)",
				"(Product Type: Flyers)",
				"1. Quantity: 1,000 units",
				"Size: 8.5 x 3.5",
				"Lamination: Matte Lamination",
				"Price: CAD 106.70",
				"Unit Price: CAD 0.10670 each",
				"(Notes / Quantity Breakdown)",
				"(Ship to dock 4)",
				"(Total Items: 1)",
				"(Total Price: CAD 106.70)",
			},
			absent: []string{"SPECIFICATION SHEET", "Coating:", "Sides Coated:", "Option:"},
		},
		{
			name:      "spec sheet",
			specSheet: true,
			want:      []string{"(SPECIFICATION SHEET)", "Material: 16pt Gloss Cover", "(Total Price: CAD 106.70)"},
			absent:    []string{"(QUOTE)", "Coating:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := q
			q.SpecSheet = tt.specSheet
			text := plainText(t, q)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("output missing %q", w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(text, a) {
					t.Errorf("output contains %q", a)
				}
			}
		})
	}
}

func TestGenerateEmptyQuoteHasNoTotalPrice(t *testing.T) {
	text := plainText(t, quote.Quote{Number: "QT-240307-000001", Customer: quote.Customer{Name: "x"}})
	if !strings.Contains(text, "(Total Items: 0)") {
		t.Error("output missing item count")
	}
	if strings.Contains(text, "Total Price:") {
		t.Error("empty quote printed a total price")
	}
}
