package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"willowpack/estimator/internal/domain/quote"
)

// HistoryRow is one stored quote flattened for analytics.
type HistoryRow struct {
	QuoteNumber   string  `parquet:"quote_number"`
	Date          string  `parquet:"date"`
	Timestamp     int64   `parquet:"timestamp_ms"`
	CustomerName  string  `parquet:"customer_name"`
	CompanyName   string  `parquet:"company_name"`
	QuoteFor      string  `parquet:"quote_for"`
	ProductKind   string  `parquet:"product_kind"`
	ProductType   string  `parquet:"product_type"`
	SpecSheet     bool    `parquet:"spec_sheet"`
	ItemCount     int32   `parquet:"item_count"`
	TotalQuantity int64   `parquet:"total_quantity"`
	TotalPrice    float64 `parquet:"total_price"`
	Currency      string  `parquet:"currency"`
}

func HistoryRows(records []quote.StoredQuote) []HistoryRow {
	rows := make([]HistoryRow, 0, len(records))
	for _, r := range records {
		q := r.Quote()
		row := HistoryRow{
			QuoteNumber:  r.QuoteNumber,
			Date:         r.Date,
			Timestamp:    r.Timestamp.UnixMilli(),
			CustomerName: r.CustomerDetails.Name,
			CompanyName:  r.CustomerDetails.CompanyName,
			QuoteFor:     q.QuoteFor(),
			ProductType:  r.ProductType(),
			SpecSheet:    r.IsSpecSheet,
			ItemCount:    int32(len(r.OrderItems)),
			TotalPrice:   q.Total().InexactFloat64(),
			Currency:     q.Currency(),
		}
		if r.ProductConfig.Config != nil {
			row.ProductKind = string(r.ProductConfig.Config.Kind())
		}
		for _, it := range r.OrderItems {
			row.TotalQuantity += int64(it.Quantity)
		}
		rows = append(rows, row)
	}
	return rows
}

// HistoryParquet writes the history as a single parquet file.
func HistoryParquet(w io.Writer, records []quote.StoredQuote) error {
	pw := parquet.NewGenericWriter[HistoryRow](w)
	if _, err := pw.Write(HistoryRows(records)); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// HistoryJSON writes the records in the same shape the history file uses, so
// the output can be imported as a history file.
func HistoryJSON(w io.Writer, records []quote.StoredQuote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if records == nil {
		records = []quote.StoredQuote{}
	}
	return enc.Encode(records)
}

// HistoryFileName is the download name for a history dump taken at t.
func HistoryFileName(t time.Time, ext string) string {
	return "quote-history-" + t.UTC().Format("20060102-150405") + "." + ext
}
