package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "CAD"

func FormatMoney(currency string, amount decimal.Decimal) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + amount.StringFixed(2)
}

func FormatUnitPrice(currency string, amount decimal.Decimal) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + amount.StringFixed(5) + " each"
}

var quantityPrinter = message.NewPrinter(language.English)

// FormatQuantity groups thousands: 10000 -> "10,000".
func FormatQuantity(n int) string {
	return quantityPrinter.Sprintf("%d", n)
}
