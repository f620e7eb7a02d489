package seawater

import "errors"

var (
	// ErrOutOfRange reports an input outside the validity range documented
	// for a range-checked equation. Returned errors wrap this sentinel and
	// name the violated bound.
	ErrOutOfRange = errors.New("input out of range")

	// ErrNoRealSolution reports inputs for which an equation has no real
	// result.
	ErrNoRealSolution = errors.New("no real solution")
)
