package services

import (
	"github.com/petzku/qc2md/internal/core/domain"
)

// Categorize partitions annotations into groups keyed by category.
//
// In flat mode (collapse false) the group key is the category verbatim.
// In collapsed mode every category except the standalone ones (Typeset,
// Timing, Encode) lands in the single "Script" bucket, which keeps most
// notes together in chronological order. Within a group, report order is
// preserved.
func Categorize(entries []domain.Annotation, collapse bool) domain.Groups {
	groups := make(domain.Groups)

	for _, entry := range entries {
		key := entry.Category
		if collapse && !domain.IsStandalone(entry.Category) {
			key = domain.CollapsedGroup
		}
		groups[key] = append(groups[key], entry)
	}

	return groups
}
