package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"willowpack/estimator/internal/domain/quote"
)

// QuoteStore keeps the quote history as one JSON array in a file, the same
// shape the browser kept under its printCalculatorQuotes key. Every write
// rewrites the whole file through a temp file and rename.
type QuoteStore struct {
	path string
	mu   sync.Mutex
}

func NewQuoteStore(path string) (*QuoteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history dir: %w", err)
		}
	}
	return &QuoteStore{path: path}, nil
}

func (s *QuoteStore) Path() string { return s.path }

func (s *QuoteStore) List(ctx context.Context) ([]quote.StoredQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *QuoteStore) Get(ctx context.Context, number string) (quote.StoredQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return quote.StoredQuote{}, err
	}
	for _, q := range all {
		if q.QuoteNumber == number {
			return q, nil
		}
	}
	return quote.StoredQuote{}, quote.ErrNotFound
}

func (s *QuoteStore) Append(ctx context.Context, q quote.StoredQuote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return err
	}
	return s.write(append(all, q))
}

func (s *QuoteStore) DeleteByNumber(ctx context.Context, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return err
	}
	rest, ok := quote.RemoveByNumber(all, number)
	if !ok {
		return quote.ErrNotFound
	}
	return s.write(rest)
}

func (s *QuoteStore) read() ([]quote.StoredQuote, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []quote.StoredQuote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(data) == 0 {
		return []quote.StoredQuote{}, nil
	}
	var out []quote.StoredQuote
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	return out, nil
}

func (s *QuoteStore) write(all []quote.StoredQuote) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".quotes-*.json")
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
