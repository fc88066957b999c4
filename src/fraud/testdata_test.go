package fraud

import (
	"time"

	"fraudwatch-server/src/models"
)

var sampleAmounts = []float64{10, 12, 12, 13, 12, 11, 14, 13, 15, 10000}

func at(hour, min, sec int) time.Time {
	return time.Date(2024, time.March, 14, hour, min, sec, 0, time.UTC)
}

func tableOf(amounts ...float64) *models.Table {
	rows := make([]models.Transaction, len(amounts))
	for i, a := range amounts {
		rows[i] = models.Transaction{
			ID:               int64(i + 1),
			CardholderID:     7,
			Card:             "4539000000000001",
			DateTime:         at(14, 0, 0).Add(time.Duration(i) * time.Minute),
			Amount:           a,
			MerchantCategory: "restaurant",
		}
	}
	return models.NewTable(rows)
}

func boolPtr(b bool) *bool { return &b }
