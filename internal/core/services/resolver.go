package services

import (
	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driven"
	"github.com/petzku/qc2md/internal/logger"
)

// Resolver decides which dialogue reference lines, if any, get attached
// above an annotation's checklist line.
//
// The picker-enabled flag is run-scoped state carried on the resolver
// itself: once the user cancels a pick, the flag is downgraded and every
// later annotation emits all of its candidates without asking again.
// The downgrade is one-way and only ever touched from the single
// execution goroutine.
type Resolver struct {
	index   *Index // nil means no dialogue data was supplied
	format  domain.RefFormat
	pick    bool
	chooser driven.Chooser
}

// NewResolver creates a resolver. index may be nil (no dialogue data) and
// chooser may be nil (picking unavailable, all candidates are emitted).
func NewResolver(index *Index, format domain.RefFormat, pick bool, chooser driven.Chooser) *Resolver {
	return &Resolver{
		index:   index,
		format:  format,
		pick:    pick && chooser != nil,
		chooser: chooser,
	}
}

// PickEnabled reports whether the interactive picker is still in play.
func (r *Resolver) PickEnabled() bool {
	return r.pick
}

// References returns the reference lines for an annotation, in the order
// they should appear above its checklist line. A nil result means no
// reference lines at all; a single empty string is the placeholder for
// "references requested but no dialogue data supplied".
func (r *Resolver) References(note domain.Annotation) []string {
	// Non-dialogue categories never get a reference, not even a placeholder.
	if domain.IsNonDialogue(note.Category) {
		return nil
	}

	if r.index == nil {
		return []string{""}
	}

	matches, err := r.index.LinesAt(note.Time)
	if err != nil {
		logger.Warn("skipping reference lookup for %q: %v", note.Time, err)
		return nil
	}
	if len(matches) == 0 {
		return nil
	}

	if len(matches) == 1 || !r.pick {
		return r.renderAll(matches)
	}

	index, ok, err := r.chooser.Choose(note, matches)
	if err != nil {
		logger.Warn("picker failed, emitting all candidates: %v", err)
		r.pick = false
		return r.renderAll(matches)
	}
	if !ok {
		// User cancelled: emit everything and stop asking for the rest
		// of the run.
		logger.Debug("pick cancelled at %s, disabling picker", note.Time)
		r.pick = false
		return r.renderAll(matches)
	}

	return []string{r.render(matches[index])}
}

func (r *Resolver) renderAll(matches []domain.DialogueLine) []string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, r.render(m))
	}
	return lines
}

func (r *Resolver) render(line domain.DialogueLine) string {
	if r.format == domain.RefText {
		return line.Plain()
	}
	return line.Raw
}
