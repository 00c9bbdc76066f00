// Package mpvqc parses mpvQC report files.
//
// A report carries a "path" metadata line naming the reviewed artifact,
// a [DATA] marker, and one annotation per line in the form
//
//	[HH:MM:SS] [Category] free text
//
// Lines starting with # are comments.
package mpvqc

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/petzku/qc2md/internal/core/domain"
	"github.com/petzku/qc2md/internal/core/ports/driven"
	"github.com/petzku/qc2md/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.ReportLoader = (*Loader)(nil)

// linePattern matches one annotation line, e.g.
// [00:02:18] [Phrasing] unsure of "comprises"
var linePattern = regexp.MustCompile(`^\[(.+?)\] \[(.+?)\] (.+)`)

// Loader reads mpvQC report files.
type Loader struct{}

// New creates a new report loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses the report at path. Missing artifact metadata or
// a missing [DATA] marker is fatal; the caller gets no partial report.
func (l *Loader) Load(path string) (domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Report{}, fmt.Errorf("read report: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	artifact, err := findArtifact(lines)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	body, err := dataSection(lines)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	report := domain.Report{Artifact: artifact}
	for _, line := range body {
		if strings.HasPrefix(line, "#") {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		report.Entries = append(report.Entries, domain.Annotation{
			Time:     m[1],
			Category: m[2],
			Text:     m[3],
		})
	}

	logger.Debug("parsed %d annotations from %s", len(report.Entries), path)
	return report, nil
}

// findArtifact extracts the artifact base name from the "path" metadata
// line. The value may be an absolute path; only the final segment is kept.
func findArtifact(lines []string) (string, error) {
	for _, line := range lines {
		if !strings.HasPrefix(line, "path") {
			continue
		}
		segments := strings.Split(line, "/")
		name := strings.TrimSpace(segments[len(segments)-1])
		if name == "" {
			break
		}
		return name, nil
	}
	return "", domain.ErrNoArtifact
}

// dataSection returns the lines following the [DATA] marker.
func dataSection(lines []string) ([]string, error) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "[DATA]" {
			return lines[i+1:], nil
		}
	}
	return nil, domain.ErrNoDataMarker
}
