package services

import (
	"fmt"
	"strings"

	"github.com/petzku/qc2md/internal/core/domain"
)

// Meta is the optional header metadata for a rendered document.
type Meta struct {
	// Artifact is the media file name the report was made against.
	Artifact string

	// Commit is the version-control revision of the report's repository.
	Commit string
}

// Render serializes the grouped annotations into the final markdown
// document. All resolution decisions have already been made upstream;
// this function only formats.
//
// resolver may be nil, in which case no reference lines are emitted at
// all (references were not requested).
func Render(groups domain.Groups, meta Meta, resolver *Resolver) string {
	var b strings.Builder

	if meta.Artifact != "" {
		fmt.Fprintf(&b, "Using artifact `%s`\n", meta.Artifact)
	}
	if meta.Commit != "" {
		fmt.Fprintf(&b, "Repo at commit `%s`\n", meta.Commit)
	}
	if meta.Artifact != "" || meta.Commit != "" {
		b.WriteString("\n")
	}

	for _, group := range groups.Keys() {
		fmt.Fprintf(&b, "## %s\n", group)

		for _, note := range groups[group] {
			if resolver != nil {
				for _, ref := range resolver.References(note) {
					b.WriteString("> ")
					b.WriteString(ref)
					b.WriteString("\n")
				}
			}

			// Group differs from the category only in collapsed mode;
			// then the category goes inline since the section header
			// no longer carries it.
			if group != note.Category {
				fmt.Fprintf(&b, "- [ ] [`%s` - **%s**]: %s\n", note.Time, note.Category, note.Text)
			} else {
				fmt.Fprintf(&b, "- [ ] [`%s`]: %s\n", note.Time, note.Text)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}
