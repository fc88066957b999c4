package handlers

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	db "fraudwatch-server/src/db/sql"
	"fraudwatch-server/src/models"
)

type fakeSource struct {
	table     *models.Table
	holders   []models.Cardholder
	dateRange *models.DateRange
	err       error

	lastFilter  atomic.Pointer[models.TransactionFilter]
	txCalls     atomic.Int32
	holderCalls atomic.Int32
	rangeCalls  atomic.Int32
}

func (f *fakeSource) GetTransactions(_ context.Context, filter models.TransactionFilter) (*models.Table, error) {
	f.txCalls.Add(1)
	f.lastFilter.Store(&filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.table.Clone(), nil
}

func (f *fakeSource) GetDateRange(_ context.Context, _ *int64) (models.DateRange, error) {
	f.rangeCalls.Add(1)
	if f.dateRange == nil {
		return models.DateRange{}, db.ErrNoTransactions
	}
	return *f.dateRange, nil
}

func (f *fakeSource) GetAllCardholders(context.Context) ([]models.Cardholder, error) {
	f.holderCalls.Add(1)
	return f.holders, nil
}

type fakeCache struct {
	holders []models.Cardholder
	ranges  map[string]models.DateRange
}

func newFakeCache() *fakeCache {
	return &fakeCache{ranges: map[string]models.DateRange{}}
}

func rangeKey(id *int64) string {
	if id == nil {
		return "all"
	}
	return strconv.FormatInt(*id, 10)
}

func (c *fakeCache) GetCardholders() ([]models.Cardholder, bool) { return c.holders, c.holders != nil }
func (c *fakeCache) SetCardholders(h []models.Cardholder)       { c.holders = h }
func (c *fakeCache) GetDateRange(id *int64) (models.DateRange, bool) {
	r, ok := c.ranges[rangeKey(id)]
	return r, ok
}
func (c *fakeCache) SetDateRange(id *int64, r models.DateRange) { c.ranges[rangeKey(id)] = r }
func (c *fakeCache) Clear(name string) error {
	c.holders = nil
	c.ranges = map[string]models.DateRange{}
	return nil
}

func at(day, hour int) time.Time {
	return time.Date(2018, time.February, day, hour, 0, 0, 0, time.UTC)
}

// sampleTable has one extreme charge at 02:00, one micro charge and one
// early-morning charge.
func sampleTable() *models.Table {
	amounts := []float64{10, 12, 12, 13, 12, 11, 14, 13, 15, 10000, 1.25}
	rows := make([]models.Transaction, len(amounts))
	for i, a := range amounts {
		rows[i] = models.Transaction{
			ID:               int64(i + 1),
			CardholderID:     3,
			CardholderName:   "Kyle Tucker",
			Card:             "4761049645711555811",
			DateTime:         at(i+1, 13),
			Amount:           a,
			MerchantCategory: "coffee shop",
		}
	}
	rows[9].DateTime = at(10, 2)
	rows[4].DateTime = at(5, 7)
	return models.NewTable(rows)
}
