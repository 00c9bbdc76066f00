package domain

import "fmt"

// RefFormat selects how a matched dialogue line is rendered as a reference.
type RefFormat string

const (
	// RefFull dumps the full source event line, override tags included.
	RefFull RefFormat = "full"

	// RefText emits the plain spoken text only.
	RefText RefFormat = "text"
)

// ParseRefFormat validates a reference format name.
func ParseRefFormat(s string) (RefFormat, error) {
	switch RefFormat(s) {
	case RefFull, RefText:
		return RefFormat(s), nil
	default:
		return "", fmt.Errorf("%w: ref format %q", ErrInvalidInput, s)
	}
}
