package driven

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// Chooser resolves ambiguity when an annotation matches more than one
// dialogue line. It is a blocking, modal request/response boundary: the
// render pipeline suspends until the human answers.
//
// Implementations may be a terminal UI, a plain stdin prompt, or a scripted
// fake for tests. Core logic must not depend on any particular UI toolkit.
type Chooser interface {
	// Choose presents the candidates for the given annotation and returns
	// the index of the selected line. ok is false if the user cancelled.
	Choose(note domain.Annotation, candidates []domain.DialogueLine) (index int, ok bool, err error)
}
