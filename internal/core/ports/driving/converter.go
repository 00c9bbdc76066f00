package driving

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// Options configures a single report conversion.
type Options struct {
	// Refs enables dialogue reference lines above checklist entries.
	Refs bool

	// Collapse merges most categories into one chronological bucket.
	Collapse bool

	// Format selects how matched dialogue lines are rendered.
	Format domain.RefFormat

	// Pick enables the interactive disambiguation picker.
	Pick bool

	// Dialogue is the subtitle file to source references from. Empty means
	// no dialogue data; lookups degrade to placeholder lines.
	Dialogue string
}

// Converter turns a parsed report into the final markdown document.
type Converter interface {
	// Convert runs the whole pipeline: categorize, resolve references,
	// render. It returns the complete document text; nothing is written
	// to disk here.
	Convert(report domain.Report, commit string, opts Options) (string, error)
}
