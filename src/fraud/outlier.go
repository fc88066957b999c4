package fraud

import (
	"fmt"
	"math"

	"fraudwatch-server/src/models"
)

const (
	stdCutoffFactor = 3.0
	iqrCutoffFactor = 1.5
)

// Bounds is the closed interval of non-outlier amounts for one run.
type Bounds struct {
	Method Method  `json:"method"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
}

// Contains reports whether x lies inside the bounds. Values exactly on a
// bound are not outliers.
func (b Bounds) Contains(x float64) bool {
	return x >= b.Lower && x <= b.Upper
}

// ComputeBounds derives the outlier bounds for amounts under method. The
// statistics cover the whole slice, so callers must filter beforehand.
func ComputeBounds(amounts []float64, method Method) (Bounds, error) {
	if len(amounts) == 0 {
		return Bounds{}, &EmptyInputError{Op: "outlier " + method.String()}
	}
	switch method {
	case MethodStd:
		mean, std := meanStd(amounts)
		cutoff := std * stdCutoffFactor
		return Bounds{Method: method, Lower: mean - cutoff, Upper: mean + cutoff}, nil
	case MethodIQR:
		q1, q3 := quartiles(amounts)
		cutoff := (q3 - q1) * iqrCutoffFactor
		return Bounds{Method: method, Lower: q1 - cutoff, Upper: q3 + cutoff}, nil
	default:
		return Bounds{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// Flags labels every amount that falls strictly outside the method's bounds.
func Flags(amounts []float64, method Method) ([]bool, Bounds, error) {
	bounds, err := ComputeBounds(amounts, method)
	if err != nil {
		return nil, Bounds{}, err
	}
	flags := make([]bool, len(amounts))
	for i, a := range amounts {
		flags[i] = !bounds.Contains(a)
	}
	return flags, bounds, nil
}

// DetectOutliers returns a copy of table carrying the unified outlier flag for
// the selected method. Any flag left from a previous run is replaced.
func DetectOutliers(table *models.Table, method Method) (*models.Table, Bounds, error) {
	if err := requireColumns("detect outliers", table, models.ColumnAmount); err != nil {
		return nil, Bounds{}, err
	}
	if err := validateAmounts(table); err != nil {
		return nil, Bounds{}, err
	}
	flags, bounds, err := Flags(table.Amounts(), method)
	if err != nil {
		return nil, Bounds{}, err
	}

	out := table.Clone()
	for i := range out.Rows {
		flag := flags[i]
		out.Rows[i].Outlier = &flag
	}
	out.AddColumn(models.ColumnOutlier)
	out.OutlierMethod = method.String()
	return out, bounds, nil
}

func requireColumns(op string, table *models.Table, columns ...string) error {
	for _, c := range columns {
		if !table.HasColumn(c) {
			return &MissingColumnError{Op: op, Column: c}
		}
	}
	return nil
}

func validateAmounts(table *models.Table) error {
	for _, r := range table.Rows {
		if r.Amount < 0 || math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
			return &InvalidAmountError{ID: r.ID, Amount: r.Amount}
		}
	}
	return nil
}
