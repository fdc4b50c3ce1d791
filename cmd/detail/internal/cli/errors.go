package cli

import "errors"

// Flag validation errors shared by list commands.
var (
	ErrLimitOutOfRange = errors.New("--limit must be between 1 and 100")
	ErrPageOutOfRange  = errors.New("--page must be 1 or greater")
	ErrTokenRequired   = errors.New("--token is required when not running interactively")
)

// ValidatePagination checks the shared --limit and --page flag values before
// any API call is made.
func ValidatePagination(limit, page int) error {
	if limit < 1 || limit > 100 {
		return ErrLimitOutOfRange
	}
	if page < 1 {
		return ErrPageOutOfRange
	}
	return nil
}
