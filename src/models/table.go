package models

import "slices"

// Table is one retrieved, filtered set of transactions together with the
// columns the retrieval step actually produced.
type Table struct {
	Columns       []string      `json:"columns"`
	Rows          []Transaction `json:"rows"`
	OutlierMethod string        `json:"outlier_method,omitempty"`
}

// BaseColumns is the full column set returned by the transaction query.
var BaseColumns = []string{
	ColumnID,
	ColumnCardholderID,
	ColumnCardholderName,
	ColumnCard,
	ColumnDateTime,
	ColumnAmount,
	ColumnMerchantCategory,
}

func NewTable(rows []Transaction) *Table {
	return &Table{Columns: slices.Clone(BaseColumns), Rows: rows}
}

func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Clone copies the row slice and the derived flag pointers so that the copy
// can be enriched without touching the original.
func (t *Table) Clone() *Table {
	rows := make([]Transaction, len(t.Rows))
	for i, r := range t.Rows {
		if r.Outlier != nil {
			v := *r.Outlier
			r.Outlier = &v
		}
		if r.MicroFraud != nil {
			v := *r.MicroFraud
			r.MicroFraud = &v
		}
		rows[i] = r
	}
	return &Table{
		Columns:       slices.Clone(t.Columns),
		Rows:          rows,
		OutlierMethod: t.OutlierMethod,
	}
}

// AddColumn appends name to the column list once.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Transaction) bool) *Table {
	out := t.Clone()
	out.Rows = slices.DeleteFunc(out.Rows, func(r Transaction) bool { return !keep(r) })
	return out
}

func (t *Table) Amounts() []float64 {
	amounts := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		amounts[i] = r.Amount
	}
	return amounts
}
