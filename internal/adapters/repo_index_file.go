package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgmanifest/internal/ports"
	"pkgmanifest/internal/types"
)

// RepoIndexFileAdapter serves available versions from a YAML index. The
// file is read on first use and cached.
type RepoIndexFileAdapter struct {
	Path   string
	cached types.RepoIndexFile
	loaded bool
}

func NewRepoIndexFileAdapter(path string) *RepoIndexFileAdapter {
	return &RepoIndexFileAdapter{Path: path}
}

func (a *RepoIndexFileAdapter) AvailableVersions(identity string) ([]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	if versions, ok := index.Packages[identity]; ok {
		return versions, nil
	}
	return index.Packages[strings.ToLower(identity)], nil
}

func (a *RepoIndexFileAdapter) load() (types.RepoIndexFile, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.RepoIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("repo index file not found").
			WithCause(err)
	}
	var idx types.RepoIndexFile
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return types.RepoIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid repo index format").
			WithCause(err)
	}
	if idx.Packages == nil {
		idx.Packages = map[string][]string{}
	}
	a.cached = idx
	a.loaded = true
	return idx, nil
}

var _ ports.RepoIndexPort = (*RepoIndexFileAdapter)(nil)
