package quote

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Renderer turns a quote into a document. pdf.Generator implementations
// satisfy it.
type Renderer interface {
	Generate(q Quote) ([]byte, error)
}

type Service struct {
	Repo     Repository
	Renderer Renderer
	Numbers  *NumberGenerator
	Now      func() time.Time
	QuoteFor string
	Currency string
}

func NewService(repo Repository, r Renderer) *Service {
	return &Service{
		Repo:     repo,
		Renderer: r,
		Numbers:  NewNumberGenerator(),
		Now:      time.Now,
		QuoteFor: DefaultQuoteFor,
	}
}

// Prepare validates q and fills in the quote number, date and brand.
func (s *Service) Prepare(q Quote) (Quote, error) {
	if err := Validate(q); err != nil {
		return q, err
	}
	now := s.now()
	q.Customer.Name = strings.TrimSpace(q.Customer.Name)
	q.Number = strings.TrimSpace(q.Customer.QuoteNumber)
	if q.Number == "" {
		gen := s.Numbers
		if gen == nil {
			gen = NewNumberGenerator()
		}
		n, err := gen.NewNumber()
		if err != nil {
			return q, err
		}
		q.Number = n
	}
	if q.Customer.QuoteFor == "" {
		q.Customer.QuoteFor = s.QuoteFor
	}
	if q.DefaultCurrency == "" {
		q.DefaultCurrency = s.Currency
	}
	if q.Date == "" {
		q.Date = now.Format("2006-01-02")
	}
	q.CreatedAt = now.UTC()
	return q, nil
}

// Export records q in the history and then renders it. The history entry is
// written even if rendering later fails.
func (s *Service) Export(ctx context.Context, q Quote) (Quote, []byte, error) {
	q, err := s.Prepare(q)
	if err != nil {
		return q, nil, err
	}
	if err := s.Repo.Append(ctx, NewStoredQuote(q)); err != nil {
		return q, nil, fmt.Errorf("append history: %w", err)
	}
	log.Printf("quote: appended quote_number=%s items=%d spec_sheet=%t", q.Number, len(q.Items), q.SpecSheet)

	doc, err := s.Renderer.Generate(q)
	if err != nil {
		return q, nil, fmt.Errorf("render %s: %w", q.Number, err)
	}
	return q, doc, nil
}

// Reexport renders a stored quote again under its original number. Like any
// export it appends a fresh history entry first.
func (s *Service) Reexport(ctx context.Context, number string) (Quote, []byte, error) {
	rec, err := s.Repo.Get(ctx, number)
	if err != nil {
		return Quote{}, nil, err
	}
	q := rec.Quote()
	q.Customer.QuoteNumber = rec.QuoteNumber
	return s.Export(ctx, q)
}

func (s *Service) History(ctx context.Context, term string) ([]StoredQuote, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, term), nil
}

func (s *Service) Delete(ctx context.Context, number string) error {
	if err := s.Repo.DeleteByNumber(ctx, number); err != nil {
		return err
	}
	log.Printf("quote: deleted quote_number=%s", number)
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
