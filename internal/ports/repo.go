package ports

// RepoIndexPort lists the published versions of a package identity. An
// unknown identity yields no versions and no error.
type RepoIndexPort interface {
	AvailableVersions(identity string) ([]string, error)
}
