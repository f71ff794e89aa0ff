package compute

import "errors"

var (
	// ErrShapeMismatch is returned when operand dimensions do not line up, e.g. a weight
	// vector whose length differs from the column count or ragged input rows.
	ErrShapeMismatch = errors.New("compute: shape mismatch")

	// ErrEmptyMatrix is returned when a matrix with zero rows or zero columns is requested.
	ErrEmptyMatrix = errors.New("compute: empty matrix")

	// ErrInvalidTopN is returned for a negative top-N count.
	ErrInvalidTopN = errors.New("compute: top-n must not be negative")
)
