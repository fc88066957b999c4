package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"fraudwatch-server/src/fraud"
	"fraudwatch-server/src/models"
)

// HistogramBins matches the amount distribution chart on the dashboard.
const HistogramBins = 50

// Build assembles the dashboard view of an enriched table.
func Build(res *fraud.Result) (*models.Report, error) {
	table := res.Table

	early, err := fraud.EarlyHourTransactions(table)
	if err != nil {
		return nil, err
	}
	outliers := Outliers(table)

	return &models.Report{
		Summary:    Summarize(table, res.Bounds),
		Histogram:  Histogram(table.Amounts(), HistogramBins),
		Outliers:   outliers.Rows,
		EarlyHours: early.Rows,
		Rows:       SortByDateDesc(table).Rows,
	}, nil
}

// Outliers keeps the rows carrying a true outlier flag.
func Outliers(table *models.Table) *models.Table {
	return table.Filter(models.Transaction.IsOutlier)
}

func Summarize(table *models.Table, bounds fraud.Bounds) models.Summary {
	suspicious := decimal.Zero
	scores := decimal.Zero
	s := models.Summary{
		TotalTransactions: table.Len(),
		OutlierMethod:     table.OutlierMethod,
		LowerBound:        decimal.NewFromFloat(bounds.Lower).StringFixed(2),
		UpperBound:        decimal.NewFromFloat(bounds.Upper).StringFixed(2),
	}
	for _, r := range table.Rows {
		scores = scores.Add(decimal.NewFromInt(int64(r.RiskScore)))
		if r.IsOutlier() {
			s.OutliersDetected++
			suspicious = suspicious.Add(decimal.NewFromFloat(r.Amount))
		}
		if r.IsMicroFraud() {
			s.MicroDetected++
		}
	}
	s.TotalSuspicious = suspicious.StringFixed(2)
	if table.Len() > 0 {
		s.AverageRiskScore = scores.Div(decimal.NewFromInt(int64(table.Len()))).StringFixed(1)
	} else {
		s.AverageRiskScore = decimal.Zero.StringFixed(1)
	}
	return s
}

// Histogram splits [min, max] into n equal-width bins; the last bin is closed.
func Histogram(amounts []float64, n int) []models.HistogramBin {
	if len(amounts) == 0 || n <= 0 {
		return nil
	}
	lo, hi := slices.Min(amounts), slices.Max(amounts)
	if lo == hi {
		return []models.HistogramBin{{Low: lo, High: hi, Count: len(amounts)}}
	}

	width := (hi - lo) / float64(n)
	bins := make([]models.HistogramBin, n)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[n-1].High = hi
	for _, a := range amounts {
		i := int((a - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// SortByDateDesc returns a copy ordered newest first, ties broken by id.
func SortByDateDesc(table *models.Table) *models.Table {
	out := table.Clone()
	slices.SortStableFunc(out.Rows, func(a, b models.Transaction) int {
		if c := b.DateTime.Compare(a.DateTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
