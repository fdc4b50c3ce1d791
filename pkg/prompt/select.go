package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for option selection.
type selectModel struct {
	title    string
	options  []Option
	cursor   int
	selected *Option
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, options []Option) selectModel {
	return selectModel{
		title:   title,
		options: options,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		selected := m.options[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	}

	return m, nil
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("? %s  [Use arrows to move, Enter to select]\n\n", m.title))

	for i, option := range m.options {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, option.Label))
	}

	s.WriteString("\nPress Ctrl+C or q to cancel")

	return s.String()
}

// selectOptionBubbleTea runs the Bubble Tea program for option selection.
func selectOptionBubbleTea(title string, options []Option) (Option, error) {
	p := tea.NewProgram(initialSelectModel(title, options))

	finalModel, err := p.Run()
	if err != nil {
		return Option{}, fmt.Errorf("%w: %w", ErrSelectionRun, err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Option{}, fmt.Errorf("%w: unexpected model type", ErrSelectionRun)
	}

	if model.selected == nil {
		return Option{}, ErrNoSelection
	}

	return *model.selected, nil
}
