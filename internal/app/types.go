package app

import "pkgmanifest/internal/types"

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	PackageName string
	Targets     int
	Products    int
}

type ResolveRequest struct {
	ManifestPath string
	RepoIndex    string
	OutputDir    string
	WriteSBOM    bool
}

type ResolveResult struct {
	PackageName string
	LockPath    string
	SBOMPath    string
	Pins        []types.LockPin
}

type InspectRequest struct {
	ManifestPath string
	LockPath     string
}

type InspectProduct struct {
	Name    string
	Kind    types.ProductKind
	Targets []string
}

type InspectTarget struct {
	Name      string
	Kind      types.TargetKind
	DependsOn []string
}

type InspectDependency struct {
	Identity   string
	Location   string
	Constraint string
	Locked     string
}

type InspectResult struct {
	PackageName  string
	ToolsVersion string
	BuildOrder   []InspectTarget
	Products     []InspectProduct
	Dependencies []InspectDependency
}

type ValidateWorkspaceRequest struct {
	Root string
}

type WorkspaceManifest struct {
	Path        string
	PackageName string
	Err         error
}

type ValidateWorkspaceResult struct {
	Manifests []WorkspaceManifest
	Failed    int
}
