// Package prompt provides interactive prompt functionality for the Detail CLI.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Option is one selectable entry with a user-facing label and the value
// reported on selection.
type Option struct {
	Label string
	Value string
}

// Prompter interface provides user interaction functionality. It is only
// handed to callers when the process is attached to an interactive terminal.
type Prompter interface {
	// SelectOption prompts the user to choose one of the given options.
	SelectOption(title string, options []Option) (Option, error)

	// ReadText prompts the user for a required line of text.
	ReadText(label string) (string, error)

	// ReadOptionalText prompts the user for an optional line of text; empty
	// input returns an empty string without error.
	ReadOptionalText(label string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// SelectOption prompts the user to choose one of the given options.
func (p *realPrompt) SelectOption(title string, options []Option) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}

	return selectOptionBubbleTea(title, options)
}

// ReadText prompts the user for a required line of text.
func (p *realPrompt) ReadText(label string) (string, error) {
	fmt.Printf("%s: ", label)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	return input, nil
}

// ReadOptionalText prompts the user for an optional line of text.
func (p *realPrompt) ReadOptionalText(label string) (string, error) {
	fmt.Printf("%s (optional, press Enter to skip): ", label)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(input), nil
}
