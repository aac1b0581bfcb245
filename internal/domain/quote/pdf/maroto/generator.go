package maroto

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
)

// Generator lays a quote out as a table. Page breaks are left to maroto.
type Generator struct{}

func New() *Generator { return &Generator{} }

var (
	grey      = &props.Color{Red: 80, Green: 80, Blue: 80}
	headerBg  = &props.Color{Red: 33, Green: 37, Blue: 41}
	summaryBg = &props.Color{Red: 240, Green: 240, Blue: 240}
)

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, q)
	addCustomer(m, q)
	addSpecifications(m, q)
	addItems(m, q)
	addNotes(m, q)
	addTotals(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, q quote.Quote) {
	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New(q.Title(), props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
			),
			col.New(4).Add(
				text.New(q.QuoteFor(), props.Text{Size: 10, Align: align.Right, Color: grey}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New("Quote Number: "+q.Number, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New("Date: "+q.Date, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
		row.New(4),
	)
}

func addCustomer(m core.Maroto, q quote.Quote) {
	lines := []string{"Customer: " + q.Customer.Name}
	if q.Customer.CompanyName != "" {
		lines = append(lines, "Company: "+q.Customer.CompanyName)
	}
	for _, l := range lines {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(l, props.Text{Size: 10}))))
	}
	m.AddRows(row.New(4))
}

func addSpecifications(m core.Maroto, q quote.Quote) {
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Product Specifications", props.Text{Size: 11, Style: fontstyle.Bold}),
	)))
	if q.Product == nil {
		return
	}
	m.AddRows(row.New(6).Add(
		col.New(4).Add(text.New("Product Type", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(8).Add(text.New(strings.ReplaceAll(q.Product.ProductType(), "_", " "), props.Text{Size: 9})),
	))
	for _, s := range q.Product.Specifications() {
		m.AddRows(row.New(5).Add(
			col.New(4).Add(text.New(s.Label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(s.Value, props.Text{Size: 9})),
		))
	}
	m.AddRows(row.New(4))
}

func addItems(m core.Maroto, q quote.Quote) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}
	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Quantity", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Versions", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Details", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
		),
	)

	base := props.Text{Size: 8, Align: align.Center}
	right := base
	right.Align = align.Right
	left := base
	left.Align = align.Left
	for i, it := range q.Items {
		versions := "-"
		if it.Versions > 1 {
			versions = fmt.Sprintf("%d", it.Versions)
		}
		details := it.Specifications
		if details == "" && q.Product != nil {
			details = strings.ReplaceAll(q.Product.ProductType(), "_", " ")
		}
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), base)),
				col.New(2).Add(text.New(pricing.FormatQuantity(it.Quantity), right)),
				col.New(1).Add(text.New(versions, base)),
				col.New(4).Add(text.New(details, left)),
				col.New(2).Add(text.New(pricing.FormatMoney(it.Currency, it.TotalPrice), right)),
				col.New(2).Add(text.New(pricing.FormatUnitPrice(it.Currency, it.UnitPrice()), right)),
			),
		)
	}
}

func addNotes(m core.Maroto, q quote.Quote) {
	if strings.TrimSpace(q.Notes) == "" {
		return
	}
	m.AddRows(
		row.New(6),
		row.New(7).Add(col.New(12).Add(
			text.New("Notes / Quantity Breakdown", props.Text{Size: 10, Style: fontstyle.Bold}),
		)),
	)
	for _, line := range strings.Split(q.Notes, "\n") {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(line, props.Text{Size: 9}))))
	}
}

func addTotals(m core.Maroto, q quote.Quote) {
	m.AddRows(row.New(6))
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	cell := &props.Cell{BackgroundColor: summaryBg}
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Total Items", label)).WithStyle(cell),
			col.New(4).Add(text.New(fmt.Sprintf("%d", len(q.Items)), label)).WithStyle(cell),
		),
	)
	if len(q.Items) == 0 {
		return
	}
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Total Price", label)).WithStyle(cell),
			col.New(4).Add(text.New(pricing.FormatMoney(q.Currency(), q.Total()), label)).WithStyle(cell),
		),
	)
}
