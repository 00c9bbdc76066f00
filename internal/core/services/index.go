package services

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// Index answers overlap queries against a loaded subtitle timeline.
// It is built once per run and read-only afterward.
//
// Queries are a linear scan. Subtitle files are small (hundreds to a few
// thousand events), so an interval tree would buy nothing here.
type Index struct {
	lines []domain.DialogueLine
}

// NewIndex builds an index over the given dialogue lines.
// Source order is preserved and reflected in query results.
func NewIndex(lines []domain.DialogueLine) *Index {
	return &Index{lines: lines}
}

// Len returns the number of indexed dialogue lines.
func (ix *Index) Len() int {
	return len(ix.lines)
}

// LinesAt returns every dialogue line whose display interval overlaps the
// 1-second window anchored at the given HH:MM:SS timestamp, in source
// order. No match yields an empty result, not an error.
func (ix *Index) LinesAt(timestamp string) ([]domain.DialogueLine, error) {
	window, err := domain.ParseWindow(timestamp)
	if err != nil {
		return nil, err
	}

	var matches []domain.DialogueLine
	for _, line := range ix.lines {
		if line.Overlaps(window) {
			matches = append(matches, line)
		}
	}
	return matches, nil
}
