package ports

// WorkspacePort discovers manifest files below a workspace root.
type WorkspacePort interface {
	FindManifests(root string) ([]string, error)
}
