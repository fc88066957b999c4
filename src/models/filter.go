package models

import "time"

// TransactionFilter narrows the retrieval query. A nil CardholderID means all
// cardholders; nil dates leave that side of the range open. Both dates are
// inclusive calendar days.
type TransactionFilter struct {
	CardholderID *int64
	Start        *time.Time
	End          *time.Time
}
