package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	// Wider lines cause eye-tracking fatigue; cap markdown wrapping.
	maxReadableWidth = 100
)

// SectionRenderer renders detail views as sections with bold headers and
// terminal-width separators.
type SectionRenderer struct {
	sections []section
}

type section struct {
	header string
	body   string
}

// NewSectionRenderer creates an empty SectionRenderer.
func NewSectionRenderer() *SectionRenderer {
	return &SectionRenderer{}
}

// KeyValue adds a section of aligned key/value pairs.
func (r *SectionRenderer) KeyValue(header string, pairs [][2]string) *SectionRenderer {
	width := 0
	for _, pair := range pairs {
		if len(pair[0]) > width {
			width = len(pair[0])
		}
	}

	var b strings.Builder
	for _, pair := range pairs {
		fmt.Fprintf(&b, "%-*s  %s\n", width, pair[0], pair[1])
	}

	r.sections = append(r.sections, section{header: header, body: b.String()})
	return r
}

// Markdown adds a section rendered from markdown text.
func (r *SectionRenderer) Markdown(header, markdown string) *SectionRenderer {
	r.sections = append(r.sections, section{header: header, body: RenderMarkdown(markdown)})
	return r
}

// Print writes all sections to w.
func (r *SectionRenderer) Print(w io.Writer) {
	separator := Muted(strings.Repeat("─", terminalWidth()))

	for _, s := range r.sections {
		if s.header != "" {
			fmt.Fprintln(w, Header(s.header))
		}
		fmt.Fprintln(w, separator)
		fmt.Fprint(w, s.body)
		fmt.Fprintln(w)
	}
}

// RenderMarkdown renders markdown using glamour, word-wrapped to the
// terminal width. Returns the original text when rendering fails or no
// terminal is attached.
func RenderMarkdown(markdown string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return markdown
	}

	wrapWidth := terminalWidth()
	if wrapWidth > maxReadableWidth {
		wrapWidth = maxReadableWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return rendered
}

// terminalWidth returns the stdout width, or a default when it cannot be
// detected.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
