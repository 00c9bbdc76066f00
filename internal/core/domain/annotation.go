package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Annotation is a single entry in an mpvQC report.
// Annotations are immutable once parsed; report order is preserved.
type Annotation struct {
	// Time is the wall-clock offset into the artifact, HH:MM:SS.
	Time string

	// Category is the free-form label on the note (e.g. "Phrasing").
	Category string

	// Text is the free-form note body.
	Text string
}

// Window is the 1-second lookup window anchored at an annotation timestamp.
// A dialogue line matches if it is at least partially visible within it.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// ParseTimestamp converts an HH:MM:SS report timestamp to an offset.
func ParseTimestamp(ts string) (time.Duration, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
	}

	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
		}
		fields[i] = n
	}
	if fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, ts)
	}

	return time.Duration(fields[0])*time.Hour +
		time.Duration(fields[1])*time.Minute +
		time.Duration(fields[2])*time.Second, nil
}

// ParseWindow converts an HH:MM:SS report timestamp to its lookup window
// [t, t+1s). Report timestamps only carry second granularity, so the whole
// second is searched rather than an exact instant.
func ParseWindow(ts string) (Window, error) {
	start, err := ParseTimestamp(ts)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: start + time.Second}, nil
}
