package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrNoOptions    = errors.New("no options available")
	ErrNoSelection  = errors.New("no selection made")
	ErrEmptyInput   = errors.New("input cannot be empty")
	ErrSelectionRun = errors.New("failed to run selection program")
)
