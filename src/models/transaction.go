package models

import "time"

// Column names produced by the retrieval step.
const (
	ColumnID               = "id"
	ColumnCardholderID     = "cardholder_id"
	ColumnCardholderName   = "name"
	ColumnCard             = "card"
	ColumnDateTime         = "date_time"
	ColumnAmount           = "amount"
	ColumnMerchantCategory = "merchant_category"

	ColumnOutlier    = "outlier"
	ColumnMicroFraud = "micro_fraud"
	ColumnRiskScore  = "risk_score"
)

type Transaction struct {
	ID               int64     `json:"id"`
	CardholderID     int64     `json:"cardholder_id"`
	CardholderName   string    `json:"name"`
	Card             string    `json:"card"`
	DateTime         time.Time `json:"date_time"`
	Amount           float64   `json:"amount"`
	MerchantCategory string    `json:"merchant_category"`

	// Derived by the fraud pipeline. Nil means the detector has not run.
	Outlier    *bool `json:"outlier,omitempty"`
	MicroFraud *bool `json:"micro_fraud,omitempty"`
	RiskScore  int   `json:"risk_score"`
}

// TimeOfDay is the wall-clock offset from midnight in the timestamp's own location.
func (t Transaction) TimeOfDay() time.Duration {
	h, m, s := t.DateTime.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.DateTime.Nanosecond())
}

func (t Transaction) IsOutlier() bool {
	return t.Outlier != nil && *t.Outlier
}

func (t Transaction) IsMicroFraud() bool {
	return t.MicroFraud != nil && *t.MicroFraud
}
