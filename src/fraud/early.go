package fraud

import (
	"time"

	"fraudwatch-server/src/models"
)

const (
	earlyHourStart = 7 * time.Hour
	earlyHourEnd   = 9 * time.Hour
)

// EarlyHourTransactions keeps rows whose time of day falls in [07:00, 09:00].
func EarlyHourTransactions(table *models.Table) (*models.Table, error) {
	if err := requireColumns("early hour transactions", table, models.ColumnDateTime); err != nil {
		return nil, err
	}
	return table.Filter(func(t models.Transaction) bool {
		tod := t.TimeOfDay()
		return tod >= earlyHourStart && tod <= earlyHourEnd
	}), nil
}
