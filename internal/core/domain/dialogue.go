package domain

import (
	"strings"
	"time"
)

// DialogueLine is one subtitle event: a display interval and its text.
// Lines are loaded once per run and read-only afterward. Positioning and
// styling events are excluded by the loader, not here.
type DialogueLine struct {
	// Start and End bound the display interval, Start < End.
	Start time.Duration
	End   time.Duration

	// Text is the event's text field as written in the subtitle file,
	// including any inline override tags.
	Text string

	// Raw is the full source event line, used by the "full" reference format.
	Raw string
}

// Overlaps reports whether the line is at least partially visible within w.
// The rule is start < window.end AND end > window.start, so a line that
// merely touches the window boundary does not match.
func (l DialogueLine) Overlaps(w Window) bool {
	return l.Start < w.End && l.End > w.Start
}

// Plain returns the spoken text only: ASS override-tag blocks are removed
// and hard line breaks are flattened to spaces.
func (l DialogueLine) Plain() string {
	var b strings.Builder
	depth := 0
	for _, r := range l.Text {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}

	text := b.String()
	text = strings.ReplaceAll(text, `\N`, " ")
	text = strings.ReplaceAll(text, `\n`, " ")
	return strings.Join(strings.Fields(text), " ")
}
