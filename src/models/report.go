package models

type Summary struct {
	TotalTransactions int    `json:"total_transactions"`
	OutliersDetected  int    `json:"outliers_detected"`
	MicroDetected     int    `json:"micro_detected"`
	TotalSuspicious   string `json:"total_suspicious"`
	AverageRiskScore  string `json:"average_risk_score"`
	OutlierMethod     string `json:"outlier_method"`
	LowerBound        string `json:"lower_bound"`
	UpperBound        string `json:"upper_bound"`
}

type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

type Report struct {
	Summary     Summary        `json:"summary"`
	Histogram   []HistogramBin `json:"histogram"`
	Outliers    []Transaction  `json:"outliers"`
	EarlyHours  []Transaction  `json:"early_hours"`
	Rows        []Transaction  `json:"rows"`
	Cardholders []Cardholder   `json:"cardholders,omitempty"`
}
