package api

import "errors"

// API-specific errors.
var (
	ErrInvalidID              = errors.New("invalid identifier")
	ErrInvalidState           = errors.New("invalid close state")
	ErrInvalidDismissalReason = errors.New("invalid dismissal reason")
	ErrUnauthorized           = errors.New("unauthorized: run `detail auth login` to authenticate")
	ErrNotFound               = errors.New("not found")
	ErrRateLimited            = errors.New("rate limited by the Detail API")
	ErrInvalidToken           = errors.New("invalid token format")
)
