package paginate

import "errors"

// Pagination-specific errors.
var (
	ErrInvalidPageSize = errors.New("page size must be positive")
)
