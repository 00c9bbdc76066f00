// Package domain defines the core business entities for qc2md.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Annotation: One timestamped note from an mpvQC report
//   - Report: A parsed report (artifact name plus annotations)
//   - DialogueLine: One subtitle event's time range and text
//   - Groups: Annotations partitioned by category
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
