package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"willowpack/estimator/internal/domain/order"
	"willowpack/estimator/internal/domain/quote"
)

func TestOrderStore(t *testing.T) {
	s := NewOrderStore()
	sum := s.Create("USD")
	if s.Len() != 1 {
		t.Fatalf("Len() = %d", s.Len())
	}

	err := s.Update(sum.ID, func(o *order.Summary) error {
		_, err := o.Add(quote.OrderItem{Quantity: 10, TotalPrice: decimal.NewFromInt(5)})
		return err
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var n int
	s.View(sum.ID, func(o *order.Summary) error {
		n = len(o.Items())
		return nil
	})
	if n != 1 {
		t.Errorf("items = %d, want 1", n)
	}

	if err := s.View("missing", func(*order.Summary) error { return nil }); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("View(missing) error = %v", err)
	}
	s.Delete(sum.ID)
	if err := s.Update(sum.ID, func(*order.Summary) error { return nil }); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Update(deleted) error = %v", err)
	}
}

func TestOrderStoreConcurrentAdds(t *testing.T) {
	s := NewOrderStore()
	sum := s.Create("CAD")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(sum.ID, func(o *order.Summary) error {
				_, err := o.Add(quote.OrderItem{Quantity: 1, TotalPrice: decimal.NewFromInt(1)})
				return err
			})
		}()
	}
	wg.Wait()
	s.View(sum.ID, func(o *order.Summary) error {
		if got := o.Totals().Count; got != 50 {
			t.Errorf("Count = %d, want 50", got)
		}
		return nil
	})
}
