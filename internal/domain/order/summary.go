package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
)

var (
	ErrItemNotFound    = errors.New("order item not found")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// Summary is the list of line items picked for one product configuration.
// It is not safe for concurrent use; memory.OrderStore serialises access.
type Summary struct {
	ID       string
	Currency string
	Sets     bool
	Versions int
	items    []quote.OrderItem
}

func NewSummary(currency string) *Summary {
	if currency == "" {
		currency = pricing.DefaultCurrency
	}
	return &Summary{ID: uuid.NewString(), Currency: currency, Versions: 1}
}

func (s *Summary) Add(it quote.OrderItem) (quote.OrderItem, error) {
	if it.Quantity <= 0 {
		return it, ErrInvalidQuantity
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.Currency == "" {
		it.Currency = s.Currency
	}
	if s.Sets && it.Versions == 0 && s.Versions > 1 {
		it.Versions = s.Versions
	}
	s.items = append(s.items, it)
	return it, nil
}

func (s *Summary) AddRow(r pricing.Row) (quote.OrderItem, error) {
	return s.Add(FromRow(r))
}

func (s *Summary) Remove(id string) error {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

func (s *Summary) Items() []quote.OrderItem {
	out := make([]quote.OrderItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Summary) SetSets(sets bool, versions int) {
	s.Sets = sets
	if versions < 1 {
		versions = 1
	}
	s.Versions = versions
}

func (s *Summary) Totals() Totals {
	return Aggregate(s.items, s.Sets, s.Currency)
}

func FromRow(r pricing.Row) quote.OrderItem {
	return quote.OrderItem{
		Quantity:   r.Quantity,
		TotalCost:  r.TotalCost,
		TotalPrice: r.TotalPrice,
		Currency:   r.Currency,
	}
}

// Totals is the footer of the order summary. The sums are always computed;
// ShowTotal says whether the aggregate is meaningful enough to display.
type Totals struct {
	Count         int             `json:"count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Currency      string          `json:"currency"`
	MixedCurrency bool            `json:"mixed_currency"`
	ShowTotal     bool            `json:"show_total"`
}

// Aggregate sums items. The total is shown for a single item, or for any
// number of items when they are versions of one set.
func Aggregate(items []quote.OrderItem, sets bool, defaultCurrency string) Totals {
	t := Totals{
		Count:      len(items),
		TotalCost:  decimal.Zero,
		TotalPrice: decimal.Zero,
		UnitPrice:  decimal.Zero,
		Currency:   defaultCurrency,
	}
	if t.Currency == "" {
		t.Currency = pricing.DefaultCurrency
	}
	for i, it := range items {
		if i == 0 && it.Currency != "" {
			t.Currency = it.Currency
		} else if it.Currency != "" && it.Currency != t.Currency {
			t.MixedCurrency = true
		}
		t.TotalQuantity += it.Quantity
		t.TotalCost = t.TotalCost.Add(it.TotalCost)
		t.TotalPrice = t.TotalPrice.Add(it.TotalPrice)
	}
	t.UnitPrice = pricing.UnitPrice(t.TotalPrice, t.TotalQuantity)
	t.ShowTotal = t.Count == 1 || sets
	return t
}

type Display struct {
	Items     string `json:"items"`
	Total     string `json:"total,omitempty"`
	UnitPrice string `json:"unit_price,omitempty"`
}

// Display renders the footer lines; hidden totals are left empty.
func (t Totals) Display() Display {
	d := Display{Items: fmt.Sprintf("%d", t.Count)}
	if t.Count == 0 {
		d.Total = pricing.FormatMoney(t.Currency, decimal.Zero)
		return d
	}
	if !t.ShowTotal {
		return d
	}
	d.Total = pricing.FormatMoney(t.Currency, t.TotalPrice)
	if t.TotalQuantity > 0 {
		d.UnitPrice = pricing.FormatUnitPrice(t.Currency, t.UnitPrice)
	}
	return d
}
