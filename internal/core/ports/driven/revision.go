package driven

// RevisionLookup resolves the version-control revision of the repository
// containing a given path.
type RevisionLookup interface {
	// Head returns the current commit identifier for the repository that
	// contains path. An error means "no repository / no hash"; callers
	// treat that as absence, not failure.
	Head(path string) (string, error)
}
