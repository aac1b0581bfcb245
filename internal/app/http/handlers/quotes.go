package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"willowpack/estimator/internal/domain/order"
	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/domain/quote/export"
)

// exportRequest names the line items either by an open order or inline.
// An order id wins when both are given.
type exportRequest struct {
	OrderID   string            `json:"order_id"`
	Items     []quote.OrderItem `json:"items"`
	Product   product.Envelope  `json:"product"`
	Customer  quote.Customer    `json:"customer"`
	Notes     string            `json:"notes"`
	SpecSheet bool              `json:"spec_sheet"`
}

func (h *Handlers) items(req exportRequest) ([]quote.OrderItem, error) {
	if req.OrderID == "" {
		return req.Items, nil
	}
	var items []quote.OrderItem
	err := h.Orders.View(req.OrderID, func(s *order.Summary) error {
		items = s.Items()
		return nil
	})
	return items, err
}

// CreateQuote records the quote in the history and returns the PDF.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	items, err := h.items(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	q, pdfBytes, err := h.Quotes.Export(r.Context(), quote.Quote{
		Customer:  req.Customer,
		Product:   req.Product.Config,
		Items:     items,
		Notes:     req.Notes,
		SpecSheet: req.SpecSheet,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("X-Quote-Number", q.Number)
	writeFile(w, "application/pdf", q.FileName(), pdfBytes)
}

func (h *Handlers) PriceListCSV(w http.ResponseWriter, r *http.Request) {
	h.priceList(w, r, "text/csv", export.PriceListFileName, export.PriceListCSV)
}

func (h *Handlers) PriceListXLSX(w http.ResponseWriter, r *http.Request) {
	h.priceList(w, r,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.PriceListXLSXFileName, export.PriceListXLSX)
}

func (h *Handlers) priceList(w http.ResponseWriter, r *http.Request, contentType, name string,
	render func(product.Config, []quote.OrderItem, string) ([]byte, error)) {
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	items, err := h.items(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	data, err := render(req.Product.Config, items, h.Cfg.DefaultCurrency)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeFile(w, contentType, name, data)
}

func (h *Handlers) SpecSheetCSV(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	data, err := export.SpecSheetCSV(req.Product.Config)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeFile(w, "text/csv", export.SpecSheetFileName, data)
}

// ListQuotes returns the history, filtered by ?q= when present.
func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	records, err := h.Quotes.History(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ExportHistory dumps the whole history as JSON (default) or parquet.
func (h *Handlers) ExportHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.Quotes.History(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	format := r.URL.Query().Get("format")
	switch format {
	case "", "json":
		format = "json"
		err = export.HistoryJSON(&buf, records)
	case "parquet":
		err = export.HistoryParquet(&buf, records)
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	contentType := "application/json"
	if format == "parquet" {
		contentType = "application/vnd.apache.parquet"
	}
	writeFile(w, contentType, export.HistoryFileName(time.Now(), format), buf.Bytes())
}

// QuotePDF renders a stored quote again and records the re-export.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, pdfBytes, err := h.Quotes.Reexport(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("X-Quote-Number", q.Number)
	writeFile(w, "application/pdf", q.FileName(), pdfBytes)
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Quotes.Delete(r.Context(), chi.URLParam(r, "number")); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) NewQuoteNumber(w http.ResponseWriter, r *http.Request) {
	gen := h.Quotes.Numbers
	if gen == nil {
		gen = quote.NewNumberGenerator()
	}
	n, err := gen.NewNumber()
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"quote_number": n})
}
