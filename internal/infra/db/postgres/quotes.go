package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"willowpack/estimator/internal/domain/quote"
)

// QuoteRepository stores each history entry as one row. Appends are single
// INSERTs, so concurrent writers cannot lose each other's records.
type QuoteRepository struct {
	db *DB
}

func NewQuoteRepository(db *DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) List(ctx context.Context) ([]quote.StoredQuote, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT record FROM quote_history ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []quote.StoredQuote{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var q quote.StoredQuote
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("decode quote record: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *QuoteRepository) Get(ctx context.Context, number string) (quote.StoredQuote, error) {
	var raw []byte
	err := r.db.Pool.QueryRow(ctx,
		`SELECT record FROM quote_history WHERE quote_number = $1 ORDER BY id LIMIT 1`, number,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return quote.StoredQuote{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.StoredQuote{}, err
	}
	var q quote.StoredQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		return quote.StoredQuote{}, fmt.Errorf("decode quote record: %w", err)
	}
	return q, nil
}

func (r *QuoteRepository) Append(ctx context.Context, q quote.StoredQuote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO quote_history (quote_number, customer_name, company_name, record, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		q.QuoteNumber, q.CustomerDetails.Name, q.CustomerDetails.CompanyName, raw, q.Timestamp,
	)
	return err
}

func (r *QuoteRepository) DeleteByNumber(ctx context.Context, number string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM quote_history WHERE quote_number = $1`,
		number,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}
