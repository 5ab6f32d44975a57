package app

import (
	"time"

	"pkgmanifest/internal/adapters"
	"pkgmanifest/internal/ports"
)

type Service struct {
	ManifestSource ports.ManifestSourcePort
	RepoIndex      func(path string) ports.RepoIndexPort
	LockWriter     ports.LockWriterPort
	LockReader     ports.LockReaderPort
	Workspace      ports.WorkspacePort
	SBOM           ports.SBOMPort
	Clock          func() time.Time
}

func NewService() Service {
	lock := adapters.NewLockFileAdapter()
	return Service{
		ManifestSource: adapters.NewManifestFileAdapter(),
		RepoIndex: func(path string) ports.RepoIndexPort {
			return adapters.NewRepoIndexFileAdapter(path)
		},
		LockWriter: lock,
		LockReader: lock,
		Workspace:  adapters.NewWorkspaceAdapter(),
		SBOM:       adapters.NewSBOMWriterAdapter(),
		Clock:      time.Now,
	}
}
