package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
)

const PriceListXLSXFileName = "price-list.xlsx"

// PriceListXLSX is the spreadsheet form of PriceListCSV. Amounts are written
// as numbers so the workbook can be summed.
func PriceListXLSX(cfg product.Config, items []quote.OrderItem, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Price List"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	widths := map[string]float64{"A": 14, "B": 10, "C": 16, "D": 16, "E": 10}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	unitFmt := "0.00000"
	unitStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &unitFmt})
	if err != nil {
		return nil, fmt.Errorf("create unit style: %w", err)
	}

	r := 1
	set := func(cell string, v any) error {
		return f.SetCellValue(sheet, cell, v)
	}
	if err := set("A1", "Product Specifications"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	r++
	if cfg != nil {
		if err := set(fmt.Sprintf("A%d", r), "Product Type: "+display(cfg.ProductType())); err != nil {
			return nil, err
		}
		r++
		for _, s := range cfg.Specifications() {
			if err := set(fmt.Sprintf("A%d", r), s.String()); err != nil {
				return nil, err
			}
			r++
		}
	}
	r++

	headers := []string{"Quantity", "Versions", "Total Price", "Unit Price", "Currency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, r)
		if err := set(cell, h); err != nil {
			return nil, err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, r)
	last, _ := excelize.CoordinatesToCellName(len(headers), r)
	if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
		return nil, err
	}
	r++

	firstItem := r
	for _, it := range items {
		versions := 1
		if it.Versions > 1 {
			versions = it.Versions
		}
		vals := []any{
			it.Quantity,
			versions,
			it.TotalPrice.InexactFloat64(),
			it.UnitPrice().InexactFloat64(),
			it.Currency,
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, r)
			if err := set(cell, v); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", r), fmt.Sprintf("C%d", r), moneyStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", r), fmt.Sprintf("D%d", r), unitStyle); err != nil {
			return nil, err
		}
		r++
	}
	r++

	if err := set(fmt.Sprintf("A%d", r), "Total Items"); err != nil {
		return nil, err
	}
	if err := set(fmt.Sprintf("C%d", r), len(items)); err != nil {
		return nil, err
	}
	r++
	if err := set(fmt.Sprintf("A%d", r), "Total Price"); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		formula := fmt.Sprintf("SUM(C%d:C%d)", firstItem, firstItem+len(items)-1)
		if err := f.SetCellFormula(sheet, fmt.Sprintf("C%d", r), formula); err != nil {
			return nil, err
		}
	} else if err := set(fmt.Sprintf("C%d", r), 0); err != nil {
		return nil, err
	}
	q := quote.Quote{Items: items, DefaultCurrency: currency}
	if err := set(fmt.Sprintf("E%d", r), q.Currency()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", r), fmt.Sprintf("C%d", r), moneyStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
