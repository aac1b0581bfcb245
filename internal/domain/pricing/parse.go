package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrNegative      = errors.New("must not be negative")
	ErrNotPositive   = errors.New("must be greater than zero")
)

// FieldError names the rejected input and why it was rejected.
type FieldError struct {
	Field string
	Input string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q %v", e.Field, e.Input, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Input: s, Err: ErrInvalidNumber}
	}
	if d.IsNegative() {
		return decimal.Zero, &FieldError{Field: field, Input: s, Err: ErrNegative}
	}
	return d, nil
}

func ParsePercent(field, s string) (decimal.Decimal, error) {
	return ParseAmount(field, strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

func ParseQuantity(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, &FieldError{Field: field, Input: s, Err: ErrInvalidNumber}
	}
	if n <= 0 {
		return 0, &FieldError{Field: field, Input: s, Err: ErrNotPositive}
	}
	return n, nil
}

// AmountOrZero keeps the lenient behaviour for stored records, where a
// malformed amount renders as zero instead of failing the export.
func AmountOrZero(s string) decimal.Decimal {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidNumber
	}
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
