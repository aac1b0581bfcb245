package pricing

import (
	"github.com/shopspring/decimal"
)

const DefaultMarkupPercent = 40

var hundred = decimal.NewFromInt(100)

// ApplyMarkup returns cost * (1 + percent/100), rounded to cents.
func ApplyMarkup(cost, percent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(percent.Div(hundred))
	return cost.Mul(factor).Round(2)
}

// MarkupPercent is the inverse of ApplyMarkup. A zero cost yields zero.
func MarkupPercent(cost, price decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return price.Sub(cost).Div(cost).Mul(hundred).Round(2)
}

// Markup is the pricing panel: a quantity with its cost, price and markup.
// When Percent is set the price is derived from cost; otherwise Price is
// taken as entered.
type Markup struct {
	Quantity int
	Cost     decimal.Decimal
	Price    decimal.Decimal
	Percent  *decimal.Decimal
	Currency string
	Versions int
}

type Quote struct {
	Quantity      int             `json:"quantity"`
	Cost          decimal.Decimal `json:"cost"`
	Price         decimal.Decimal `json:"price"`
	MarkupPercent decimal.Decimal `json:"markup_percent"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Currency      string          `json:"currency"`
	Versions      int             `json:"versions,omitempty"`
}

func (m Markup) Resolve() Quote {
	q := Quote{
		Quantity: m.Quantity,
		Cost:     m.Cost.Round(2),
		Price:    m.Price.Round(2),
		Currency: m.Currency,
		Versions: m.Versions,
	}
	if m.Percent != nil {
		q.Price = ApplyMarkup(m.Cost, *m.Percent)
		q.MarkupPercent = m.Percent.Round(2)
	} else {
		q.MarkupPercent = MarkupPercent(m.Cost, m.Price)
	}
	q.UnitPrice = PanelUnitPrice(q.Price, q.Quantity)
	return q
}

// PanelUnitPrice is the two-decimal per-unit figure shown next to the price.
func PanelUnitPrice(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return price.Div(decimal.NewFromInt(int64(quantity))).Round(2)
}

// UnitPrice is the five-decimal per-unit figure printed on quotes.
func UnitPrice(total decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(quantity))).Round(5)
}
