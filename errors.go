package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned when a division meets a zero divisor.
	// No partial result accompanies it.
	ErrDivideByZero = errors.New("vecmath: division by zero")

	// ErrEmptyBatch is returned when a batch operation needs at least one vector.
	ErrEmptyBatch = errors.New("vecmath: empty batch")
)

// DivideByZeroAt wraps ErrDivideByZero with the index of the offending cell.
func DivideByZeroAt(index int) error {
	return fmt.Errorf("%w at index %d", ErrDivideByZero, index)
}

// ErrDimensionMismatch indicates two vectors of different dimension.
//
// The core operations never return it; it is reported by callers that
// validate their inputs (e.g. the batch package).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

// NewErrDimensionMismatch returns an ErrDimensionMismatch wrapping cause.
func NewErrDimensionMismatch(expected, actual int, cause error) *ErrDimensionMismatch {
	return &ErrDimensionMismatch{Expected: expected, Actual: actual, cause: cause}
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vecmath: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
