package ports

import "pkgmanifest/internal/types"

// ManifestSourcePort reads a manifest document. Conversion and
// validation happen in core.
type ManifestSourcePort interface {
	LoadDocument(path string) (types.ManifestDocument, error)
}
