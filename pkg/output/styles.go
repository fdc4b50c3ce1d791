package output

import "github.com/charmbracelet/lipgloss"

// Semantic status colors, adaptive for light/dark terminals.
var (
	colorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	colorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
)

// Status styles, consistent across all commands.
var (
	passStyle   = lipgloss.NewStyle().Foreground(colorPass)
	failStyle   = lipgloss.NewStyle().Foreground(colorFail)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Status icons.
const (
	IconPass = "✓"
	IconFail = "✗"
)

// Success renders text with success (green) styling.
func Success(s string) string {
	return passStyle.Render(s)
}

// Failure renders text with failure (red) styling.
func Failure(s string) string {
	return failStyle.Render(s)
}

// Muted renders text with muted (gray) styling.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Header renders text with bold header styling.
func Header(s string) string {
	return headerStyle.Render(s)
}
