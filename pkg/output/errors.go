package output

import "errors"

// Output-specific errors.
var (
	ErrInvalidFormat = errors.New("invalid output format")
)
