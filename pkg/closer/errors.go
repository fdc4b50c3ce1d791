package closer

import "errors"

// Close-flow validation errors.
var (
	ErrPendingNotCloseState = errors.New(`"pending" is not a valid close state (it is a list filter only); use "resolved" or "dismissed"`)
	ErrStateRequired        = errors.New("--state is required when not running interactively")
	ErrReasonRequired       = errors.New("--dismissal-reason is required when state is 'dismissed'")
)
