package grid

import "fmt"

// ConstructionError is returned when a Grid cannot be built from its input.
type ConstructionError struct {
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grid: %s: %v", e.Reason, e.Err)
	}
	return "grid: " + e.Reason
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// OutOfRangeError is returned by Get for a cell outside its row.
type OutOfRangeError struct {
	Cell Cell
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("grid: cell (%d,%d) out of range", e.Cell.Row, e.Cell.Col)
}
