package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driven"
)

// Ensure Picker implements the interface.
var _ driven.Chooser = (*Picker)(nil)

// Picker implements the Chooser port with a modal bubbletea program.
// Each Choose call runs its own program synchronously; the conversion
// pipeline blocks until the user answers.
type Picker struct{}

// New creates a new interactive picker.
func New() *Picker {
	return &Picker{}
}

// Choose presents the candidates and returns the selected index.
// ok is false when the user cancelled.
func (p *Picker) Choose(note domain.Annotation, candidates []domain.DialogueLine) (int, bool, error) {
	if len(candidates) == 0 {
		return 0, false, fmt.Errorf("%w: no candidates to pick from", domain.ErrInvalidInput)
	}

	program := tea.NewProgram(NewModel(note, candidates))
	final, err := program.Run()
	if err != nil {
		return 0, false, fmt.Errorf("picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Confirmed() {
		return 0, false, nil
	}
	return m.Selected(), true, nil
}
