package driven

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// DialogueSource loads subtitle dialogue events from a timed-text file.
// Non-dialogue events (positioning, styling) are filtered out before the
// lines are returned; what remains is indexable dialogue only.
type DialogueSource interface {
	// Load parses the file at path into dialogue lines, in source order.
	Load(path string) ([]domain.DialogueLine, error)
}
