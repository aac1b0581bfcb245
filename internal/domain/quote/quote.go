package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/product"
)

const DefaultQuoteFor = "Willowpack"

// OrderItem is one quantity/price pairing. Cost and price are supplied by
// the caller and never recomputed from the quantity.
type OrderItem struct {
	ID             string          `json:"id"`
	Quantity       int             `json:"quantity"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Currency       string          `json:"currency"`
	Versions       int             `json:"versions,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
}

func (it OrderItem) UnitPrice() decimal.Decimal {
	return pricing.UnitPrice(it.TotalPrice, it.Quantity)
}

type Customer struct {
	Name        string `json:"customerName"`
	CompanyName string `json:"companyName"`
	QuoteNumber string `json:"quoteNumber"`
	QuoteFor    string `json:"quoteFor"`
}

// Quote is everything a rendered quote or spec sheet needs.
type Quote struct {
	Number    string
	CreatedAt time.Time
	Date      string
	Customer  Customer
	Product   product.Config
	Items     []OrderItem
	Notes     string
	SpecSheet bool

	// DefaultCurrency labels totals when no item names a currency.
	DefaultCurrency string
}

func (q Quote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

// Currency is the first item's currency; mixed currencies are not converted.
func (q Quote) Currency() string {
	if len(q.Items) > 0 && q.Items[0].Currency != "" {
		return q.Items[0].Currency
	}
	if q.DefaultCurrency != "" {
		return q.DefaultCurrency
	}
	return pricing.DefaultCurrency
}

func (q Quote) Title() string {
	if q.SpecSheet {
		return "SPECIFICATION SHEET"
	}
	return "QUOTE"
}

func (q Quote) QuoteFor() string {
	if q.Customer.QuoteFor != "" {
		return q.Customer.QuoteFor
	}
	return DefaultQuoteFor
}

func (q Quote) FileName() string {
	if q.SpecSheet {
		return "spec_sheet_" + q.Number + ".pdf"
	}
	return "quote_" + q.Number + ".pdf"
}

// StoredQuote is a history entry. The JSON shape follows the browser
// history list so existing exports can be imported as-is.
type StoredQuote struct {
	ProductConfig   product.Envelope `json:"productConfig"`
	OrderItems      []OrderItem      `json:"orderItems"`
	CustomerDetails Customer         `json:"customerDetails"`
	Notes           string           `json:"notes,omitempty"`
	Date            string           `json:"date"`
	IsSpecSheet     bool             `json:"isSpecSheet,omitempty"`
	QuoteNumber     string           `json:"quoteNumber"`
	Timestamp       time.Time        `json:"timestamp"`
}

func NewStoredQuote(q Quote) StoredQuote {
	return StoredQuote{
		ProductConfig:   product.Envelope{Config: q.Product},
		OrderItems:      q.Items,
		CustomerDetails: q.Customer,
		Notes:           q.Notes,
		Date:            q.Date,
		IsSpecSheet:     q.SpecSheet,
		QuoteNumber:     q.Number,
		Timestamp:       q.CreatedAt,
	}
}

func (s StoredQuote) Quote() Quote {
	return Quote{
		Number:    s.QuoteNumber,
		CreatedAt: s.Timestamp,
		Date:      s.Date,
		Customer:  s.CustomerDetails,
		Product:   s.ProductConfig.Config,
		Items:     s.OrderItems,
		Notes:     s.Notes,
		SpecSheet: s.IsSpecSheet,
	}
}

func (s StoredQuote) ProductType() string {
	if s.ProductConfig.Config == nil {
		return ""
	}
	return s.ProductConfig.Config.ProductType()
}
