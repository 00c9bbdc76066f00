package services

import (
	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driven"
	"github.com/petzku/qc2md/internal/core/ports/driving"
	"github.com/petzku/qc2md/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.Converter = (*ConvertService)(nil)

// ConvertService orchestrates the conversion pipeline:
// categorize, resolve references, render.
type ConvertService struct {
	dialogue driven.DialogueSource
	chooser  driven.Chooser
}

// NewConvertService creates a converter. dialogue and chooser are optional;
// without them the respective features degrade as documented on the ports.
func NewConvertService(dialogue driven.DialogueSource, chooser driven.Chooser) *ConvertService {
	return &ConvertService{
		dialogue: dialogue,
		chooser:  chooser,
	}
}

// Convert runs the whole pipeline and returns the document text.
//
// A subtitle file that is missing or unparsable is a degraded-data
// condition, not a failure: references render as placeholders and the
// run continues.
func (s *ConvertService) Convert(report domain.Report, commit string, opts driving.Options) (string, error) {
	groups := Categorize(report.Entries, opts.Collapse)
	logger.Debug("categorized %d entries into %d groups", len(report.Entries), len(groups))

	var resolver *Resolver
	if opts.Refs {
		resolver = NewResolver(s.loadIndex(opts.Dialogue), opts.Format, opts.Pick, s.chooser)
	}

	meta := Meta{Artifact: report.Artifact, Commit: commit}
	return Render(groups, meta, resolver), nil
}

// loadIndex builds the dialogue index, or returns nil when no dialogue
// data is available.
func (s *ConvertService) loadIndex(path string) *Index {
	if path == "" || s.dialogue == nil {
		return nil
	}

	lines, err := s.dialogue.Load(path)
	if err != nil {
		logger.Warn("dialogue file unavailable, references degrade to placeholders: %v", err)
		return nil
	}

	logger.Debug("indexed %d dialogue lines from %s", len(lines), path)
	return NewIndex(lines)
}
