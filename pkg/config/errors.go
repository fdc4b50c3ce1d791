package config

import "errors"

// Configuration-specific errors.
var (
	ErrConfigParse      = errors.New("failed to parse config file")
	ErrNotAuthenticated = errors.New("no token found; run `detail auth login`")
)
