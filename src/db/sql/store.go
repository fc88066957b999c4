package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fraudwatch-server/src/models"
)

// Store binds the query functions to a pool and applies the per-query timeout.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewStore(pool *pgxpool.Pool, timeout time.Duration) *Store {
	return &Store{pool: pool, timeout: timeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) GetTransactions(ctx context.Context, filter models.TransactionFilter) (*models.Table, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return GetTransactions(ctx, s.pool, filter)
}

func (s *Store) GetDateRange(ctx context.Context, cardholderID *int64) (models.DateRange, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return GetDateRange(ctx, s.pool, cardholderID)
}

func (s *Store) GetAllCardholders(ctx context.Context) ([]models.Cardholder, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return GetAllCardholders(ctx, s.pool)
}

func (s *Store) GetAnalystByLogin(ctx context.Context, login string) (*models.Analyst, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return GetAnalystByLogin(ctx, s.pool, login)
}

func (s *Store) CreateAnalyst(ctx context.Context, req models.CreateAnalystRequest, hashedPassword string) (*models.Analyst, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return CreateAnalyst(ctx, s.pool, req, hashedPassword)
}

func (s *Store) UpdateAnalystLastLogin(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return UpdateAnalystLastLogin(ctx, s.pool, id)
}
