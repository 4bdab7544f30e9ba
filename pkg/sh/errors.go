package sh

import "errors"

var (
	// ErrSingularProbeMatrix is returned when the basis values at the probe
	// directions do not form an invertible matrix.
	ErrSingularProbeMatrix = errors.New("sh: probe projection matrix is singular")

	// ErrMalformedPrecomputeTable is returned for a table that is not
	// exactly 9 rows of 3 channel values.
	ErrMalformedPrecomputeTable = errors.New("sh: malformed precompute table")

	// ErrUnsupportedOrder is returned by EvalOrder for orders outside 1..MaxOrder.
	ErrUnsupportedOrder = errors.New("sh: unsupported order")
)
