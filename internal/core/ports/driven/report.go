package driven

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// ReportLoader parses an mpvQC report file.
type ReportLoader interface {
	// Load reads and parses the report at path. A missing artifact path line
	// or [DATA] marker is an error; no partial report is returned.
	Load(path string) (domain.Report, error)
}
