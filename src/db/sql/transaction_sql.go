package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fraudwatch-server/src/models"
)

const transactionsQuery = `
	SELECT t.id, a.id AS cardholder_id, a.name, b.card, t.date AS date_time, t.amount, e.name AS merchant_category
	FROM card_holder a
	JOIN credit_card b ON a.id = b.id_card_holder
	JOIN transaction t ON b.card = t.card
	JOIN merchant d ON t.id_merchant = d.id
	JOIN merchant_category e ON d.id_merchant_category = e.id
	WHERE ($1::bigint IS NULL OR a.id = $1)
	  AND ($2::date IS NULL OR t.date::date >= $2::date)
	  AND ($3::date IS NULL OR t.date::date <= $3::date)
	ORDER BY t.date, t.id
`

// GetTransactions loads the filtered transaction table. The column list comes
// from the result set so that a schema drift surfaces as a missing column.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, filter models.TransactionFilter) (*models.Table, error) {
	rows, err := pool.Query(ctx, transactionsQuery, filter.CardholderID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	columns := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		columns = append(columns, fd.Name)
	}

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(&t.ID, &t.CardholderID, &t.CardholderName, &t.Card, &t.DateTime, &t.Amount, &t.MerchantCategory)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}

	return &models.Table{Columns: columns, Rows: txns}, nil
}

// GetDateRange returns the first and last transaction dates for the filter's
// cardholder, used as the default report window.
func GetDateRange(ctx context.Context, pool *pgxpool.Pool, cardholderID *int64) (models.DateRange, error) {
	query := `
		SELECT MIN(t.date), MAX(t.date)
		FROM transaction t
		JOIN credit_card b ON b.card = t.card
		WHERE ($1::bigint IS NULL OR b.id_card_holder = $1)
	`
	var r models.DateRange
	var start, end *time.Time
	if err := pool.QueryRow(ctx, query, cardholderID).Scan(&start, &end); err != nil {
		return r, fmt.Errorf("query date range: %w", err)
	}
	if start == nil || end == nil {
		if cardholderID != nil {
			if err := CardholderExists(ctx, pool, *cardholderID); err != nil {
				return r, err
			}
		}
		return r, ErrNoTransactions
	}
	r.Start, r.End = *start, *end
	return r, nil
}
