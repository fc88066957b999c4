package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fraudwatch-server/src/models"
)

var (
	ErrAnalystNotFound = errors.New("analyst not found")
	ErrAnalystExists   = errors.New("username or email already exists")
)

const analystColumns = `id, username, email, password_hash, super_admin, locked, last_login, created_at`

func scanAnalyst(row pgx.Row) (*models.Analyst, error) {
	var a models.Analyst
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.SuperAdmin, &a.Locked, &a.LastLogin, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalystNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &a, nil
}

// GetAnalystByLogin matches either the username or the email, case-insensitively.
func GetAnalystByLogin(ctx context.Context, pool *pgxpool.Pool, login string) (*models.Analyst, error) {
	query := `SELECT ` + analystColumns + ` FROM analysts WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)`
	return scanAnalyst(pool.QueryRow(ctx, query, login))
}

func CreateAnalyst(ctx context.Context, pool *pgxpool.Pool, req models.CreateAnalystRequest, hashedPassword string) (*models.Analyst, error) {
	query := `
		INSERT INTO analysts (username, email, password_hash, super_admin)
		VALUES (LOWER($1), LOWER($2), $3, $4)
		RETURNING ` + analystColumns
	a, err := scanAnalyst(pool.QueryRow(ctx, query, req.Username, req.Email, hashedPassword, req.SuperAdmin))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAnalystExists
		}
		return nil, fmt.Errorf("failed to create analyst: %w", err)
	}
	return a, nil
}

func UpdateAnalystLastLogin(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	_, err := pool.Exec(ctx, `UPDATE analysts SET last_login = NOW() WHERE id = $1`, id)
	return err
}
