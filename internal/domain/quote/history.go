package quote

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrNotFound             = errors.New("quote not found")
)

// Repository is the quote history. Append and DeleteByNumber must be atomic
// with respect to each other.
type Repository interface {
	List(ctx context.Context) ([]StoredQuote, error)
	Get(ctx context.Context, number string) (StoredQuote, error)
	Append(ctx context.Context, q StoredQuote) error
	DeleteByNumber(ctx context.Context, number string) error
}

// Filter keeps records whose customer name, company or quote number contain
// term, ignoring case. An empty term keeps everything.
func Filter(records []StoredQuote, term string) []StoredQuote {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]StoredQuote, 0, len(records))
	for _, r := range records {
		if term == "" ||
			strings.Contains(strings.ToLower(r.CustomerDetails.Name), term) ||
			strings.Contains(strings.ToLower(r.CustomerDetails.CompanyName), term) ||
			strings.Contains(strings.ToLower(r.QuoteNumber), term) {
			out = append(out, r)
		}
	}
	return out
}

// RemoveByNumber drops every record with number and reports whether any
// was found. Relative order of the rest is kept.
func RemoveByNumber(records []StoredQuote, number string) ([]StoredQuote, bool) {
	out := make([]StoredQuote, 0, len(records))
	for _, r := range records {
		if r.QuoteNumber != number {
			out = append(out, r)
		}
	}
	if len(out) == len(records) {
		return records, false
	}
	return out, true
}

func Validate(q Quote) error {
	if strings.TrimSpace(q.Customer.Name) == "" {
		return ErrCustomerNameRequired
	}
	return nil
}
