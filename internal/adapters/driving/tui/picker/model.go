// Package picker provides the interactive disambiguation picker.
// When an annotation timestamp matches more than one dialogue line, the
// picker suspends the render pipeline, presents the candidates, and
// resumes with the user's selection or a cancellation.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/petzku/qc2md/internal/adapters/driving/tui/styles"
	"github.com/petzku/qc2md/internal/core/domain"
)

// Model is the bubbletea model for one pick.
type Model struct {
	styles    *styles.Styles
	keys      *KeyMap
	note      domain.Annotation
	options   []domain.DialogueLine
	selected  int
	confirmed bool
	cancelled bool
}

// NewModel creates a picker model for the given annotation and its
// candidate dialogue lines.
func NewModel(note domain.Annotation, options []domain.DialogueLine) Model {
	return Model{
		styles:  styles.DefaultStyles(),
		keys:    DefaultKeyMap(),
		note:    note,
		options: options,
	}
}

// Init initialises the picker model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key messages for the picker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		m.selected = (m.selected + 1) % len(m.options)
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the prompt, the candidate list, and the keybinding footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Select the applicable reference:"))
	b.WriteString("\n")
	b.WriteString(m.styles.Note.Render("    ["+m.note.Category+"]: "+m.note.Text) + "\n\n")

	for i, option := range m.options {
		cursor := "  "
		style := m.styles.Normal
		if i == m.selected {
			cursor = "> "
			style = m.styles.Selected
		}
		b.WriteString("  " + cursor + style.Render(option.Plain()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("[j/k] Navigate  [Enter] Select  [Esc] Cancel"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the currently highlighted index.
func (m Model) Selected() int {
	return m.selected
}

// Confirmed reports whether the user confirmed a selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user dismissed the picker.
func (m Model) Cancelled() bool {
	return m.cancelled
}
