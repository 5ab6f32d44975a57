package types

// RepoIndexFile lists the published versions of each package identity.
type RepoIndexFile struct {
	Packages map[string][]string `yaml:"packages"`
}

type LockPin struct {
	Identity string `yaml:"identity"`
	Location string `yaml:"location"`
	Version  string `yaml:"version"`
}

type LockFile struct {
	Package string    `yaml:"package"`
	Pins    []LockPin `yaml:"pins"`
}
