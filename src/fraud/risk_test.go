package fraud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudwatch-server/src/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		tod    time.Duration
		flags  RiskFlags
		want   int
	}{
		{"base only", 500, 14 * time.Hour, RiskFlags{}, 50},
		{"exactly 1000 is not large", 1000, 14 * time.Hour, RiskFlags{}, 50},
		{"large amount", 1000.01, 14 * time.Hour, RiskFlags{}, 75},
		{"exactly 5000 is only large", 5000, 14 * time.Hour, RiskFlags{}, 75},
		{"very large clamps", 5000.01, 14 * time.Hour, RiskFlags{}, 100},
		{"midnight", 10, 0, RiskFlags{}, 70},
		{"six sharp", 10, 6 * time.Hour, RiskFlags{}, 70},
		{"just after six", 10, 6*time.Hour + time.Second, RiskFlags{}, 50},
		{"one nanosecond after six", 10, 6*time.Hour + 1, RiskFlags{}, 50},
		{"micro", 1, 14 * time.Hour, RiskFlags{MicroFraud: boolPtr(true)}, 65},
		{"micro false", 1, 14 * time.Hour, RiskFlags{MicroFraud: boolPtr(false)}, 50},
		{"outlier", 800, 14 * time.Hour, RiskFlags{Outlier: boolPtr(true)}, 60},
		{"night micro outlier", 1, 3 * time.Hour, RiskFlags{MicroFraud: boolPtr(true), Outlier: boolPtr(true)}, 95},
		{"everything", 6000, 2 * time.Hour, RiskFlags{MicroFraud: boolPtr(true), Outlier: boolPtr(true)}, 100},
		{"large night outlier clamped", 6000, 2 * time.Hour, RiskFlags{MicroFraud: boolPtr(false), Outlier: boolPtr(true)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.amount, tt.tod, tt.flags))
		})
	}
}

func TestScore_AlwaysBounded(t *testing.T) {
	amounts := []float64{0, 0.5, 1.99, 2, 999, 1000, 1001, 4999, 5000, 5001, 1e9}
	hours := []time.Duration{0, 3 * time.Hour, 6 * time.Hour, 7 * time.Hour, 23*time.Hour + 59*time.Minute}
	flagValues := []*bool{nil, boolPtr(false), boolPtr(true)}

	for _, a := range amounts {
		for _, h := range hours {
			for _, m := range flagValues {
				for _, o := range flagValues {
					s := Score(a, h, RiskFlags{MicroFraud: m, Outlier: o})
					assert.GreaterOrEqual(t, s, 0)
					assert.LessOrEqual(t, s, 100)
				}
			}
		}
	}
}

func TestAssignRiskScores_RowWithoutFlags(t *testing.T) {
	in := models.NewTable([]models.Transaction{{ID: 1, Amount: 500, DateTime: at(14, 0, 0)}})

	out, err := AssignRiskScores(in)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Rows[0].RiskScore)
	assert.True(t, out.HasColumn(models.ColumnRiskScore))
	assert.Equal(t, 0, in.Rows[0].RiskScore)
}

func TestAssignRiskScores_Idempotent(t *testing.T) {
	in := models.NewTable([]models.Transaction{
		{ID: 1, Amount: 6000, DateTime: at(2, 0, 0), MicroFraud: boolPtr(false), Outlier: boolPtr(true)},
		{ID: 2, Amount: 1.5, DateTime: at(4, 30, 0), MicroFraud: boolPtr(true)},
		{ID: 3, Amount: 1200, DateTime: at(18, 0, 0), Outlier: boolPtr(false)},
	})

	once, err := AssignRiskScores(in)
	require.NoError(t, err)
	twice, err := AssignRiskScores(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, 100, once.Rows[0].RiskScore)
	assert.Equal(t, 85, once.Rows[1].RiskScore)
	assert.Equal(t, 75, once.Rows[2].RiskScore)
}

func TestAssignRiskScores_OrderIndependent(t *testing.T) {
	rows := []models.Transaction{
		{ID: 1, Amount: 6000, DateTime: at(2, 0, 0)},
		{ID: 2, Amount: 1.5, DateTime: at(12, 0, 0), MicroFraud: boolPtr(true)},
	}
	reversed := []models.Transaction{rows[1], rows[0]}

	a, err := AssignRiskScores(models.NewTable(rows))
	require.NoError(t, err)
	b, err := AssignRiskScores(models.NewTable(reversed))
	require.NoError(t, err)

	assert.Equal(t, a.Rows[0].RiskScore, b.Rows[1].RiskScore)
	assert.Equal(t, a.Rows[1].RiskScore, b.Rows[0].RiskScore)
}

func TestAssignRiskScores_MissingTimestamp(t *testing.T) {
	in := tableOf(10)
	in.Columns = []string{models.ColumnID, models.ColumnAmount}

	_, err := AssignRiskScores(in)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, models.ColumnDateTime, missing.Column)
}

func TestScoreTransaction_UsesLocalWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	tx := models.Transaction{Amount: 10, DateTime: time.Date(2024, 1, 2, 3, 0, 0, 0, loc)}
	assert.Equal(t, 70, ScoreTransaction(tx))
}
