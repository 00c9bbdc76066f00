// Package gitrev looks up version-control metadata by shelling out to git.
package gitrev

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/petzku/qc2md/internal/core/ports/driven"
)

// Ensure Lookup implements the interface.
var _ driven.RevisionLookup = (*Lookup)(nil)

// Lookup resolves the HEAD commit of the repository containing a path.
type Lookup struct{}

// New creates a new revision lookup.
func New() *Lookup {
	return &Lookup{}
}

// Head returns the current commit hash for the repository containing path.
// Errors mean "no hash available" and are tolerated by callers; the commit
// header line is simply omitted.
func (l *Lookup) Head(path string) (string, error) {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}

	out, err := exec.Command("git", "-C", dir, "rev-parse", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}

	hash := strings.TrimSpace(string(out))
	if hash == "" {
		return "", fmt.Errorf("git rev-parse: empty output")
	}
	return hash, nil
}
