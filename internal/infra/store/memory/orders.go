package memory

import (
	"errors"
	"sync"

	"willowpack/estimator/internal/domain/order"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore keeps open order summaries in memory, keyed by summary id.
type OrderStore struct {
	orders map[string]*order.Summary
	mu     sync.RWMutex
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Summary),
	}
}

func (s *OrderStore) Create(currency string) *order.Summary {
	sum := order.NewSummary(currency)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[sum.ID] = sum
	return sum
}

// View runs fn with read access to the summary.
func (s *OrderStore) View(id string, fn func(*order.Summary) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	return fn(sum)
}

// Update runs fn with exclusive access to the summary.
func (s *OrderStore) Update(id string, fn func(*order.Summary) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	return fn(sum)
}

func (s *OrderStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
