package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
)

func items() []quote.OrderItem {
	return []quote.OrderItem{
		{Quantity: 1000, TotalPrice: decimal.RequireFromString("106.70"), Currency: "CAD"},
		{Quantity: 2500, TotalPrice: decimal.RequireFromString("198.20"), Currency: "CAD", Versions: 2},
	}
}

func TestPriceListCSV(t *testing.T) {
	data, err := PriceListCSV(product.DefaultCommercialPrint(), items(), "USD")
	if err != nil {
		t.Fatalf("PriceListCSV() error = %v", err)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"Product Type: Flyers",
		"Printing: 4/4 Sides",
		"Quantity,Versions,Total Price,Unit Price,Currency",
		"1000,,106.70,0.10670,CAD",
		"2500,2,198.20,0.07928,CAD",
		"Total Items: 2",
		"Total Price: CAD 304.90",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("price list missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Coating") {
		t.Error("blank coating should be omitted")
	}
	if rows[0][0] != "Product Specifications" {
		t.Errorf("first row = %v", rows[0])
	}
}

func TestPriceListCSVEmpty(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"", "Total Price: CAD 0.00"},
		{"EUR", "Total Price: EUR 0.00"},
	}
	for _, tt := range tests {
		data, err := PriceListCSV(nil, nil, tt.currency)
		if err != nil {
			t.Fatalf("PriceListCSV() error = %v", err)
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("empty price list (%q) = %s", tt.currency, data)
		}
	}
}

func TestSpecSheetCSV(t *testing.T) {
	cfg := &product.FlexiblePackaging{
		Product:       product.StandUpPouches,
		Height:        "8",
		Width:         "6",
		Gusset:        "3",
		Lamination:    "Gloss",
		MainStructure: "White_PE",
		Ink:           "CMYK",
		Zipper:        "Yes",
	}
	data, err := SpecSheetCSV(cfg)
	if err != nil {
		t.Fatalf("SpecSheetCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{
		"Flexible Packaging Specifications",
		"Product Type: Stand Up Pouches",
		"Height: 8",
		"Width: 6",
		"Gusset: 3",
		"Lamination: Gloss",
		"Main Structure: White PE",
		"Ink: CMYK",
		"Zipper: Yes",
	}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("spec sheet =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
	if _, err := SpecSheetCSV(nil); !errors.Is(err, ErrNoProduct) {
		t.Errorf("SpecSheetCSV(nil) error = %v", err)
	}
}

func TestPriceListXLSX(t *testing.T) {
	data, err := PriceListXLSX(product.DefaultRollLabel(), items(), "USD")
	if err != nil {
		t.Fatalf("PriceListXLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Price List" {
		t.Fatalf("sheets = %v", sheets)
	}
	rows, err := f.GetRows("Price List")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	var header, first []string
	for i, r := range rows {
		if len(r) > 0 && r[0] == "Quantity" {
			header, first = r, rows[i+1]
			break
		}
	}
	if len(header) != 5 || header[2] != "Total Price" {
		t.Fatalf("header = %v", header)
	}
	if first[0] != "1000" || first[4] != "CAD" {
		t.Errorf("first item row = %v", first)
	}
	last := rows[len(rows)-1]
	if len(last) != 5 || last[0] != "Total Price" || last[4] != "CAD" {
		t.Errorf("total row = %v", last)
	}
}

func TestHistoryParquet(t *testing.T) {
	records := []quote.StoredQuote{
		quote.NewStoredQuote(quote.Quote{
			Number:    "QT-240307-000001",
			CreatedAt: time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC),
			Date:      "2024-03-07",
			Customer:  quote.Customer{Name: "Jane", CompanyName: "Acme"},
			Product:   product.DefaultFoldingCarton(),
			Items:     items(),
		}),
		quote.NewStoredQuote(quote.Quote{Number: "QT-240307-000002", Customer: quote.Customer{Name: "Bob"}}),
	}
	var buf bytes.Buffer
	if err := HistoryParquet(&buf, records); err != nil {
		t.Fatalf("HistoryParquet() error = %v", err)
	}

	pf, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	reader := parquet.NewGenericReader[HistoryRow](pf)
	defer reader.Close()
	rows := make([]HistoryRow, 4)
	n, _ := reader.Read(rows)
	if n != 2 {
		t.Fatalf("read %d rows, want 2", n)
	}
	got := rows[0]
	if got.QuoteNumber != "QT-240307-000001" || got.ProductKind != "folding_carton" || got.ItemCount != 2 || got.TotalQuantity != 3500 {
		t.Errorf("row = %+v", got)
	}
	if got.TotalPrice != 304.9 || got.Currency != "CAD" {
		t.Errorf("total = %v %s", got.TotalPrice, got.Currency)
	}
	if rows[1].ProductKind != "" || rows[1].QuoteFor != quote.DefaultQuoteFor {
		t.Errorf("second row = %+v", rows[1])
	}
}

func TestHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := HistoryJSON(&buf, nil); err != nil {
		t.Fatalf("HistoryJSON() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty history = %q", buf.String())
	}

	buf.Reset()
	in := []quote.StoredQuote{{QuoteNumber: "QT-240307-000001", CustomerDetails: quote.Customer{Name: "Jane"}}}
	if err := HistoryJSON(&buf, in); err != nil {
		t.Fatal(err)
	}
	var out []quote.StoredQuote
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not a history file: %v", err)
	}
	if len(out) != 1 || out[0].QuoteNumber != "QT-240307-000001" {
		t.Errorf("decoded = %+v", out)
	}
}

func TestHistoryFileName(t *testing.T) {
	got := HistoryFileName(time.Date(2024, 3, 7, 9, 5, 1, 0, time.UTC), "parquet")
	if got != "quote-history-20240307-090501.parquet" {
		t.Errorf("HistoryFileName() = %q", got)
	}
}
