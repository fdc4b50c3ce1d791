package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution-specific errors.
var (
	ErrInvalidFormat = errors.New("invalid repository format")
	ErrNotFound      = errors.New("repository not found")
	ErrAmbiguous     = errors.New("ambiguous repository name")
)

// AmbiguousError reports a bare name matching more than one accessible
// repository. Candidates holds every colliding full name in listing order.
type AmbiguousError struct {
	Name       string
	Candidates []string
}

// Error returns the ambiguity message with every candidate and a
// disambiguation example.
func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: multiple repositories with name %q found:\n", ErrAmbiguous, e.Name)
	for _, candidate := range e.Candidates {
		fmt.Fprintf(&b, "  - %s\n", candidate)
	}
	fmt.Fprintf(&b, "\nPlease specify using owner/repo format (e.g., %q).", e.Candidates[0])
	return b.String()
}

// Unwrap makes the error match ErrAmbiguous with errors.Is.
func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}
