package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
)

const (
	margin    = 20.0
	top       = 20.0
	pageBreak = 250.0
)

type Generator struct {
	FontDir string
	Now     func() time.Time
}

// New returns a generator using the core Helvetica font, or DejaVu from
// fontDir when it is set.
func New(fontDir string) *Generator { return &Generator{FontDir: fontDir, Now: time.Now} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf, err := g.build(q)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed quote_number=%s err=%v", q.Number, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

type page struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	y      float64
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

func (p *page) text(x float64, s string) {
	p.pdf.Text(x, p.y, p.tr(s))
}

// breakIfNeeded starts a new page once the cursor is past the fixed offset.
func (p *page) breakIfNeeded() {
	if p.y > pageBreak {
		p.pdf.AddPage()
		p.y = top
	}
}

func (g *Generator) build(q quote.Quote) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(q.Title()+" "+q.Number, true)
	pdf.SetAutoPageBreak(false, 0)

	p := &page{pdf: pdf, family: "Helvetica", tr: func(s string) string { return s }}
	if g.FontDir != "" {
		regularFont := filepath.Join(g.FontDir, "DejaVuSans.ttf")
		boldFont := filepath.Join(g.FontDir, "DejaVuSans-Bold.ttf")
		log.Printf("quote pdf: load fonts regular=%s bold=%s", regularFont, boldFont)
		pdf.AddUTF8Font("DejaVu", "", regularFont)
		pdf.AddUTF8Font("DejaVu", "B", boldFont)
		p.family = "DejaVu"
	} else {
		p.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	pdf.AddPage()
	p.y = top

	p.font("B", 20)
	p.text(margin, q.Title())
	p.y += 15

	p.font("", 12)
	p.text(margin, "Quote Number: "+q.Number)
	p.y += 8
	p.text(margin, "Date: "+q.Date)
	p.y += 8
	p.text(margin, "Customer: "+q.Customer.Name)
	p.y += 8
	p.text(margin, "Quote For: "+q.QuoteFor())
	p.y += 8
	if q.Customer.CompanyName != "" {
		p.text(margin, "Company: "+q.Customer.CompanyName)
		p.y += 8
	}
	p.y += 10

	p.font("B", 12)
	p.text(margin, "Product Specifications")
	p.y += 10
	p.font("", 12)
	specs := specLines(q)
	if q.Product != nil {
		p.text(margin, "Product Type: "+strings.ReplaceAll(q.Product.ProductType(), "_", " "))
		p.y += 8
		if q.SpecSheet {
			for _, s := range specs {
				p.breakIfNeeded()
				p.text(margin+5, s)
				p.y += 6
			}
		}
	}
	p.y += 5

	p.font("B", 12)
	p.text(margin, "Selected Quantities")
	p.y += 10

	for i, it := range q.Items {
		p.breakIfNeeded()
		p.font("B", 12)
		p.text(margin, itemHeading(i, it))
		p.y += 8

		p.font("", 12)
		for _, s := range specs {
			p.breakIfNeeded()
			p.text(margin+10, "   "+s)
			p.y += 6
		}
		if it.Specifications != "" {
			p.text(margin+10, "   "+it.Specifications)
			p.y += 6
		}
		p.text(margin+10, "   Price: "+pricing.FormatMoney(it.Currency, it.TotalPrice))
		p.y += 6
		p.text(margin+10, "   Unit Price: "+pricing.FormatUnitPrice(it.Currency, it.UnitPrice()))
		p.y += 10
	}

	if strings.TrimSpace(q.Notes) != "" {
		p.y += 5
		p.breakIfNeeded()
		p.font("B", 12)
		p.text(margin, "Notes / Quantity Breakdown")
		p.y += 8
		p.font("", 12)
		w, _ := pdf.GetPageSize()
		notes := q.Notes
		if p.family == "Helvetica" {
			notes = latin1(notes)
		}
		for _, line := range pdf.SplitText(notes, w-2*margin) {
			p.breakIfNeeded()
			p.text(margin, line)
			p.y += 6
		}
	}

	p.y += 10
	p.breakIfNeeded()
	p.font("B", 12)
	p.text(margin, fmt.Sprintf("Total Items: %d", len(q.Items)))
	p.y += 8
	if len(q.Items) > 0 {
		p.text(margin, "Total Price: "+pricing.FormatMoney(q.Currency(), q.Total()))
		p.y += 8
	}

	p.font("", 8)
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	p.y += 4
	p.text(margin, fmt.Sprintf("%s • Generated %s", q.QuoteFor(), now().Format(time.RFC3339)))

	return pdf, pdf.Error()
}

// latin1 replaces runes the core fonts cannot measure.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 255 {
			return '?'
		}
		return r
	}, s)
}

func specLines(q quote.Quote) []string {
	if q.Product == nil {
		return nil
	}
	specs := q.Product.Specifications()
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.String())
	}
	return out
}

func itemHeading(i int, it quote.OrderItem) string {
	s := fmt.Sprintf("%d. Quantity: %s units", i+1, pricing.FormatQuantity(it.Quantity))
	if it.Versions > 1 {
		s += fmt.Sprintf(" • %d versions", it.Versions)
	}
	return s
}
