package fraud

import (
	"time"

	"fraudwatch-server/src/models"
)

const (
	baseScore = 50
	maxScore  = 100

	largeAmount     = 1000.0
	largeAmountPts  = 25
	veryLargeAmount = 5000.0
	veryLargePts    = 50

	nightStart = 0
	nightEnd   = 6 * time.Hour
	nightPts   = 20

	microPts   = 15
	outlierPts = 10
)

// RiskFlags carries the optional derived flags a row may have. Nil means the
// detector was not run and counts as false.
type RiskFlags struct {
	MicroFraud *bool
	Outlier    *bool
}

// Score applies the additive risk rules to a single transaction and clamps
// the result to [0, 100].
func Score(amount float64, timeOfDay time.Duration, flags RiskFlags) int {
	score := baseScore
	if amount > largeAmount {
		score += largeAmountPts
	}
	if amount > veryLargeAmount {
		score += veryLargePts
	}
	if timeOfDay >= nightStart && timeOfDay <= nightEnd {
		score += nightPts
	}
	if flags.MicroFraud != nil && *flags.MicroFraud {
		score += microPts
	}
	if flags.Outlier != nil && *flags.Outlier {
		score += outlierPts
	}
	return clamp(score, 0, maxScore)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ScoreTransaction scores one row from its own fields.
func ScoreTransaction(t models.Transaction) int {
	return Score(t.Amount, t.TimeOfDay(), RiskFlags{MicroFraud: t.MicroFraud, Outlier: t.Outlier})
}

// AssignRiskScores returns a copy of table with risk_score recomputed for
// every row. Existing scores are overwritten, never accumulated.
func AssignRiskScores(table *models.Table) (*models.Table, error) {
	if err := requireColumns("assign risk score", table, models.ColumnAmount, models.ColumnDateTime); err != nil {
		return nil, err
	}
	out := table.Clone()
	for i := range out.Rows {
		out.Rows[i].RiskScore = ScoreTransaction(out.Rows[i])
	}
	out.AddColumn(models.ColumnRiskScore)
	return out, nil
}
