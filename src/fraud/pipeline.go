package fraud

import "fraudwatch-server/src/models"

type Options struct {
	Method         Method
	DetectMicro    bool
	MicroThreshold float64
}

func DefaultOptions() Options {
	return Options{
		Method:         MethodStd,
		MicroThreshold: DefaultMicroThreshold,
	}
}

// Result is the enriched table plus the bounds that produced its outlier flag.
type Result struct {
	Table  *models.Table
	Bounds Bounds
}

// Enrich runs one outlier method, the optional micro detector and the risk
// scorer over table. A micro_fraud flag already on the input is kept when
// DetectMicro is off. The input is left untouched and repeated calls with the
// same input and options give identical output.
func Enrich(table *models.Table, opts Options) (*Result, error) {
	if err := requireColumns("enrich", table, models.ColumnAmount, models.ColumnDateTime); err != nil {
		return nil, err
	}

	out, bounds, err := DetectOutliers(table, opts.Method)
	if err != nil {
		return nil, err
	}
	if opts.DetectMicro {
		if out, err = DetectMicro(out, opts.MicroThreshold); err != nil {
			return nil, err
		}
	}
	if out, err = AssignRiskScores(out); err != nil {
		return nil, err
	}
	return &Result{Table: out, Bounds: bounds}, nil
}
