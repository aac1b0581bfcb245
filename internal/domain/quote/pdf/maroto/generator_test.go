package maroto

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		q    quote.Quote
	}{
		{
			name: "quote",
			q: quote.Quote{
				Number:   "QT-240307-000042",
				Date:     "2024-03-07",
				Customer: quote.Customer{Name: "Jane Doe", CompanyName: "Acme Foods"},
				Product:  product.DefaultFlexiblePackaging(),
				Items: []quote.OrderItem{
					{Quantity: 1500, TotalPrice: decimal.RequireFromString("169.90"), Currency: "CAD", Versions: 2},
				},
				Notes: "line one\nline two",
			},
		},
		{
			name: "empty spec sheet",
			q:    quote.Quote{Number: "QT-240307-000043", Customer: quote.Customer{Name: "x"}, SpecSheet: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := New().Generate(tt.q)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF")) {
				t.Errorf("output is not a PDF")
			}
		})
	}
}
