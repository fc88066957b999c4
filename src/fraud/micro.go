package fraud

import "fraudwatch-server/src/models"

// DefaultMicroThreshold is the amount below which a charge looks like a
// stolen-card probe.
const DefaultMicroThreshold = 2.0

// IsMicro reports amount < threshold. A threshold <= 0 never matches since
// amounts are non-negative.
func IsMicro(amount, threshold float64) bool {
	return amount < threshold
}

// DetectMicro returns a copy of table with the micro_fraud flag set on every row.
func DetectMicro(table *models.Table, threshold float64) (*models.Table, error) {
	if err := requireColumns("detect micro", table, models.ColumnAmount); err != nil {
		return nil, err
	}
	out := table.Clone()
	for i := range out.Rows {
		flag := IsMicro(out.Rows[i].Amount, threshold)
		out.Rows[i].MicroFraud = &flag
	}
	out.AddColumn(models.ColumnMicroFraud)
	return out, nil
}

// MicroTransactions flags the table and keeps only the micro rows.
func MicroTransactions(table *models.Table, threshold float64) (*models.Table, error) {
	flagged, err := DetectMicro(table, threshold)
	if err != nil {
		return nil, err
	}
	return flagged.Filter(models.Transaction.IsMicroFraud), nil
}
