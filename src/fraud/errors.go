package fraud

import (
	"errors"
	"fmt"
)

var ErrUnknownMethod = errors.New("unknown outlier method")

// EmptyInputError is returned when a detector receives zero rows; mean and
// percentiles are undefined there.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Op)
}

// MissingColumnError is returned when the input table lacks a column an
// operation needs.
type MissingColumnError struct {
	Op     string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Op, e.Column)
}

type InvalidAmountError struct {
	ID     int64
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("transaction %d: invalid amount %v", e.ID, e.Amount)
}
