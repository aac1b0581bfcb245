package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
)

var ErrNoProduct = errors.New("product configuration is required")

const (
	PriceListFileName = "price-list.csv"
	SpecSheetFileName = "spec-sheet.csv"
)

// PriceListCSV writes the product specification lines followed by one row
// per selected quantity and the totals. currency labels the total when no
// item carries one.
func PriceListCSV(cfg product.Config, items []quote.OrderItem, currency string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"Product Specifications"}}
	if cfg != nil {
		rows = append(rows, []string{"Product Type: " + display(cfg.ProductType())})
		for _, s := range cfg.Specifications() {
			rows = append(rows, []string{s.String()})
		}
	}
	rows = append(rows,
		[]string{},
		[]string{"Selected Quantities"},
		[]string{"Quantity", "Versions", "Total Price", "Unit Price", "Currency"},
	)
	for _, it := range items {
		versions := ""
		if it.Versions > 1 {
			versions = fmt.Sprintf("%d", it.Versions)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.Quantity),
			versions,
			it.TotalPrice.StringFixed(2),
			it.UnitPrice().StringFixed(5),
			it.Currency,
		})
	}

	q := quote.Quote{Items: items, DefaultCurrency: currency}
	total := pricing.FormatMoney(q.Currency(), q.Total())
	rows = append(rows,
		[]string{},
		[]string{fmt.Sprintf("Total Items: %d", len(items))},
		[]string{"Total Price: " + total},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write price list: %w", err)
	}
	return buf.Bytes(), nil
}

// SpecSheetCSV lists the product's specification lines under a heading
// named after the product kind.
func SpecSheetCSV(cfg product.Config) ([]byte, error) {
	if cfg == nil {
		return nil, ErrNoProduct
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{kindTitle(cfg.Kind()) + " Specifications"},
		{"Product Type: " + display(cfg.ProductType())},
	}
	for _, s := range cfg.Specifications() {
		rows = append(rows, []string{s.String()})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write spec sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func display(v string) string { return strings.ReplaceAll(v, "_", " ") }

// kindTitle turns folding_carton into "Folding Carton".
func kindTitle(k product.Kind) string {
	words := strings.Fields(display(string(k)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
