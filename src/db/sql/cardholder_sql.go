package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fraudwatch-server/src/models"
)

var (
	ErrNoTransactions     = errors.New("no transactions")
	ErrCardholderNotFound = errors.New("cardholder not found")
)

func GetAllCardholders(ctx context.Context, pool *pgxpool.Pool) ([]models.Cardholder, error) {
	query := `
		SELECT a.id, a.name, COUNT(b.card)
		FROM card_holder a
		LEFT JOIN credit_card b ON a.id = b.id_card_holder
		GROUP BY a.id, a.name
		ORDER BY a.id
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cardholders: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cardholder, error) {
		var c models.Cardholder
		err := row.Scan(&c.ID, &c.Name, &c.Cards)
		return c, err
	})
}

func CardholderExists(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	var found int64
	err := pool.QueryRow(ctx, `SELECT id FROM card_holder WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCardholderNotFound
	}
	return err
}
