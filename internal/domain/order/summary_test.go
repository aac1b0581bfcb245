package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSingleItemShowsTotal(t *testing.T) {
	s := NewSummary("CAD")
	if _, err := s.Add(quote.OrderItem{Quantity: 1500, TotalPrice: dec("169.90"), Currency: "CAD"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	tot := s.Totals()
	if !tot.ShowTotal {
		t.Fatal("ShowTotal = false for a single item")
	}
	d := tot.Display()
	if d.Items != "1" || d.Total != "CAD 169.90" || d.UnitPrice != "CAD 0.11327 each" {
		t.Errorf("Display() = %+v", d)
	}
}

func TestTotalsVisibility(t *testing.T) {
	items := []quote.OrderItem{
		{Quantity: 1000, TotalPrice: dec("106.70"), Currency: "CAD"},
		{Quantity: 2500, TotalPrice: dec("198.20"), Currency: "CAD"},
	}
	worked := []quote.OrderItem{
		{Quantity: 1000, TotalPrice: dec("106.70"), Currency: "CAD"},
		{Quantity: 500, TotalPrice: dec("63.20"), Currency: "CAD"},
	}
	tests := []struct {
		name      string
		items     []quote.OrderItem
		sets      bool
		wantShow  bool
		wantTotal string
		wantUnit  string
	}{
		{"empty", nil, false, false, "CAD 0.00", ""},
		{"one item", items[:1], false, true, "CAD 106.70", "CAD 0.10670 each"},
		{"two items hidden", items, false, false, "", ""},
		{"two items as sets", items, true, true, "CAD 304.90", "CAD 0.08711 each"},
		{"worked example", worked, false, false, "", ""},
		{"worked example as sets", worked, true, true, "CAD 169.90", "CAD 0.11327 each"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tot := Aggregate(tt.items, tt.sets, "CAD")
			if tot.ShowTotal != tt.wantShow {
				t.Errorf("ShowTotal = %v, want %v", tot.ShowTotal, tt.wantShow)
			}
			d := tot.Display()
			if d.Total != tt.wantTotal || d.UnitPrice != tt.wantUnit {
				t.Errorf("Display() = %+v, want total %q unit %q", d, tt.wantTotal, tt.wantUnit)
			}
		})
	}
}

func TestAggregateAlwaysSums(t *testing.T) {
	items := []quote.OrderItem{
		{Quantity: 1000, TotalCost: dec("82.08"), TotalPrice: dec("106.70"), Currency: "CAD"},
		{Quantity: 2500, TotalCost: dec("152.46"), TotalPrice: dec("198.20"), Currency: "USD"},
	}
	tot := Aggregate(items, false, "")
	if !tot.TotalPrice.Equal(dec("304.90")) || !tot.TotalCost.Equal(dec("234.54")) {
		t.Errorf("sums = %s / %s", tot.TotalPrice, tot.TotalCost)
	}
	if tot.TotalQuantity != 3500 || tot.Count != 2 {
		t.Errorf("quantity %d count %d", tot.TotalQuantity, tot.Count)
	}
	if tot.Currency != "CAD" || !tot.MixedCurrency {
		t.Errorf("currency %s mixed %v", tot.Currency, tot.MixedCurrency)
	}
}

func TestAddRemove(t *testing.T) {
	s := NewSummary("")
	if s.Currency != pricing.DefaultCurrency {
		t.Errorf("Currency = %s", s.Currency)
	}
	a, err := s.Add(quote.OrderItem{Quantity: 100, TotalPrice: dec("10")})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if a.ID == "" || a.Currency != "CAD" {
		t.Errorf("added item = %+v", a)
	}
	b, _ := s.Add(quote.OrderItem{ID: "fixed", Quantity: 200, TotalPrice: dec("18")})
	if b.ID != "fixed" {
		t.Errorf("ID = %q, want fixed", b.ID)
	}

	if _, err := s.Add(quote.OrderItem{Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Add(qty 0) error = %v", err)
	}

	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := s.Remove(a.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("second Remove() error = %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "fixed" {
		t.Errorf("Items() = %+v", items)
	}
	items[0].Quantity = 9
	if s.Items()[0].Quantity != 200 {
		t.Error("Items() exposes internal slice")
	}
}

func TestSetsVersions(t *testing.T) {
	s := NewSummary("CAD")
	s.SetSets(true, 3)
	it, _ := s.Add(quote.OrderItem{Quantity: 500, TotalPrice: dec("50")})
	if it.Versions != 3 {
		t.Errorf("Versions = %d, want 3", it.Versions)
	}
	s.SetSets(false, 0)
	if s.Versions != 1 {
		t.Errorf("Versions after reset = %d", s.Versions)
	}
}

func TestAddRow(t *testing.T) {
	tbl, err := pricing.SampleTable("")
	if err != nil {
		t.Fatal(err)
	}
	row, _ := tbl.Lookup(2500)
	s := NewSummary("CAD")
	it, err := s.AddRow(row)
	if err != nil {
		t.Fatalf("AddRow() error = %v", err)
	}
	if it.Quantity != 2500 || !it.TotalPrice.Equal(dec("198.20")) || !it.TotalCost.Equal(dec("152.46")) {
		t.Errorf("AddRow() = %+v", it)
	}
}
