package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadTimestamp indicates a timestamp that is not HH:MM:SS.
	ErrBadTimestamp = errors.New("malformed timestamp")

	// ErrNoDataMarker indicates a report without a [DATA] section.
	ErrNoDataMarker = errors.New("report has no [DATA] marker")

	// ErrNoArtifact indicates a report without a path metadata line.
	ErrNoArtifact = errors.New("report has no artifact path line")

	// ErrUnsupportedSubtitle indicates a subtitle format no loader handles.
	ErrUnsupportedSubtitle = errors.New("unsupported subtitle format")
)
