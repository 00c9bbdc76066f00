package domain

// Report is a parsed mpvQC report.
type Report struct {
	// Artifact is the base name of the media file the report was made against,
	// taken from the report's "path" metadata line.
	Artifact string

	// Entries are the report's annotations in file order.
	Entries []Annotation
}
