package handlers

import (
	"context"

	"fraudwatch-server/src/models"
)

// TransactionSource is the read side of the card database.
type TransactionSource interface {
	GetTransactions(ctx context.Context, filter models.TransactionFilter) (*models.Table, error)
	GetDateRange(ctx context.Context, cardholderID *int64) (models.DateRange, error)
	GetAllCardholders(ctx context.Context) ([]models.Cardholder, error)
}

type LookupCache interface {
	GetCardholders() ([]models.Cardholder, bool)
	SetCardholders(holders []models.Cardholder)
	GetDateRange(cardholderID *int64) (models.DateRange, bool)
	SetDateRange(cardholderID *int64, r models.DateRange)
	Clear(name string) error
}

type AnalystStore interface {
	GetAnalystByLogin(ctx context.Context, login string) (*models.Analyst, error)
	CreateAnalyst(ctx context.Context, req models.CreateAnalystRequest, hashedPassword string) (*models.Analyst, error)
	UpdateAnalystLastLogin(ctx context.Context, id int64) error
}

func cardholders(ctx context.Context, src TransactionSource, cache LookupCache) ([]models.Cardholder, error) {
	if holders, ok := cache.GetCardholders(); ok {
		return holders, nil
	}
	holders, err := src.GetAllCardholders(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetCardholders(holders)
	return holders, nil
}
