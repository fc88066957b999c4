package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraudwatch-server/src/models"
)

func TestDetectMicro_DefaultThreshold(t *testing.T) {
	out, err := DetectMicro(tableOf(0.5, 1.99, 2, 2.01, 150), DefaultMicroThreshold)
	require.NoError(t, err)

	want := []bool{true, true, false, false, false}
	for i, r := range out.Rows {
		require.NotNil(t, r.MicroFraud)
		assert.Equal(t, want[i], *r.MicroFraud, "row %d", i)
	}
	assert.True(t, out.HasColumn(models.ColumnMicroFraud))
}

func TestDetectMicro_NonPositiveThresholdFlagsNothing(t *testing.T) {
	for _, threshold := range []float64{0, -3} {
		out, err := DetectMicro(tableOf(0, 0.01, 1), threshold)
		require.NoError(t, err)
		for _, r := range out.Rows {
			assert.False(t, r.IsMicroFraud())
		}
	}
}

func TestDetectMicro_EmptyTableIsFine(t *testing.T) {
	out, err := DetectMicro(tableOf(), DefaultMicroThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestMicroTransactions_KeepsOnlyFlagged(t *testing.T) {
	out, err := MicroTransactions(tableOf(1, 50, 0.3, 900), DefaultMicroThreshold)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, int64(1), out.Rows[0].ID)
	assert.Equal(t, int64(3), out.Rows[1].ID)
}
