package pricing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var sampleTable []byte

var ErrRowNotFound = errors.New("quantity row not found")

// Row is one line of the quantity table. The cost columns are sample
// figures, not the output of a pricing engine.
type Row struct {
	Quantity     int             `json:"qty"`
	Prepress     decimal.Decimal `json:"prepress"`
	PlateCost    decimal.Decimal `json:"plate_cost"`
	Plate        decimal.Decimal `json:"plate"`
	PrintCost    decimal.Decimal `json:"print_cost"`
	Paper        decimal.Decimal `json:"paper"`
	Ink          decimal.Decimal `json:"ink"`
	LaminateCost decimal.Decimal `json:"laminate_cost"`
	Laminate     decimal.Decimal `json:"laminate"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Currency     string          `json:"currency"`
}

type Table struct {
	Currency string `json:"currency"`
	Rows     []Row  `json:"rows"`
}

type yamlTable struct {
	Currency string    `yaml:"currency"`
	Rows     []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Quantity     int     `yaml:"qty"`
	Prepress     float64 `yaml:"prepress"`
	PlateCost    float64 `yaml:"plate_cost"`
	Plate        float64 `yaml:"plate"`
	PrintCost    float64 `yaml:"print_cost"`
	Paper        float64 `yaml:"paper"`
	Ink          float64 `yaml:"ink"`
	LaminateCost float64 `yaml:"laminate_cost"`
	Laminate     float64 `yaml:"laminate"`
	TotalCost    float64 `yaml:"total_cost"`
	TotalPrice   float64 `yaml:"total_price"`
	Currency     string  `yaml:"currency"`
}

// SampleTable is the built-in table priced in currency.
func SampleTable(currency string) (*Table, error) {
	return ParseTable(sampleTable, currency)
}

// LoadTable reads a YAML quantity table; an empty path yields the sample
// table. currency applies where the file names none.
func LoadTable(path, currency string) (*Table, error) {
	if path == "" {
		return SampleTable(currency)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table %s: %w", path, err)
	}
	return ParseTable(data, currency)
}

func ParseTable(data []byte, currency string) (*Table, error) {
	var yt yamlTable
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parse price table: %w", err)
	}
	if yt.Currency == "" {
		yt.Currency = currency
	}
	if yt.Currency == "" {
		yt.Currency = DefaultCurrency
	}
	t := &Table{Currency: yt.Currency}
	for i, r := range yt.Rows {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("price table row %d: qty must be > 0", i+1)
		}
		cur := r.Currency
		if cur == "" {
			cur = yt.Currency
		}
		t.Rows = append(t.Rows, Row{
			Quantity:     r.Quantity,
			Prepress:     money(r.Prepress),
			PlateCost:    money(r.PlateCost),
			Plate:        money(r.Plate),
			PrintCost:    money(r.PrintCost),
			Paper:        money(r.Paper),
			Ink:          money(r.Ink),
			LaminateCost: money(r.LaminateCost),
			Laminate:     money(r.Laminate),
			TotalCost:    money(r.TotalCost),
			TotalPrice:   money(r.TotalPrice),
			Currency:     cur,
		})
	}
	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].Quantity > t.Rows[j].Quantity })
	return t, nil
}

func (t *Table) Lookup(quantity int) (Row, error) {
	for _, r := range t.Rows {
		if r.Quantity == quantity {
			return r, nil
		}
	}
	return Row{}, fmt.Errorf("%w: qty=%d", ErrRowNotFound, quantity)
}

// Scale derives a row for quantity proportionally from base, the way the
// carton form prices a table quantity from the entered cost and price.
func Scale(base Row, quantity int) Row {
	if base.Quantity <= 0 {
		return Row{Quantity: quantity, Currency: base.Currency}
	}
	ratio := decimal.NewFromInt(int64(quantity)).Div(decimal.NewFromInt(int64(base.Quantity)))
	return Row{
		Quantity:   quantity,
		TotalCost:  base.TotalCost.Mul(ratio).Round(2),
		TotalPrice: base.TotalPrice.Mul(ratio).Round(2),
		Currency:   base.Currency,
	}
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
