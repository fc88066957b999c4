package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"fraudwatch-server/src/models"
)

// WriteCSV writes the table's columns, in table order, with a header row.
// Derived flags that were never computed are written as empty cells.
func WriteCSV(w io.Writer, table *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, r := range table.Rows {
		for i, col := range table.Columns {
			v, err := cell(r, col)
			if err != nil {
				return err
			}
			record[i] = v
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(r models.Transaction, column string) (string, error) {
	switch column {
	case models.ColumnID:
		return strconv.FormatInt(r.ID, 10), nil
	case models.ColumnCardholderID:
		return strconv.FormatInt(r.CardholderID, 10), nil
	case models.ColumnCardholderName:
		return r.CardholderName, nil
	case models.ColumnCard:
		return r.Card, nil
	case models.ColumnDateTime:
		return r.DateTime.Format(time.RFC3339Nano), nil
	case models.ColumnAmount:
		return decimal.NewFromFloat(r.Amount).String(), nil
	case models.ColumnMerchantCategory:
		return r.MerchantCategory, nil
	case models.ColumnOutlier:
		return optionalBool(r.Outlier), nil
	case models.ColumnMicroFraud:
		return optionalBool(r.MicroFraud), nil
	case models.ColumnRiskScore:
		return strconv.Itoa(r.RiskScore), nil
	default:
		return "", fmt.Errorf("unknown column %q", column)
	}
}

func optionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
