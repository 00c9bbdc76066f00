// Package subtitles loads dialogue events from timed-text files.
//
// ASS/SSA and SRT are supported, selected by file extension. Events that
// are positioning or styling directives rather than plain dialogue are
// filtered out at load time; everything downstream only ever sees
// indexable dialogue.
package subtitles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driven"
	"github.com/petzku/qc2md/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DialogueSource = (*Source)(nil)

// Source loads subtitle files into dialogue lines.
type Source struct{}

// New creates a new subtitle source.
func New() *Source {
	return &Source{}
}

// Load parses the file at path into dialogue lines, in source order.
func (s *Source) Load(path string) ([]domain.DialogueLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}

	// Subtitle tooling regularly writes a UTF-8 BOM.
	text := strings.TrimPrefix(string(data), "\ufeff")

	var lines []domain.DialogueLine
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ass", ".ssa":
		lines = parseASS(text)
	case ".srt":
		lines = parseSRT(text)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSubtitle, ext)
	}

	logger.Debug("loaded %d dialogue lines from %s", len(lines), path)
	return lines, nil
}
