package ports

import (
	"time"

	"pkgmanifest/internal/types"
)

type SBOMPort interface {
	WriteSBOM(path string, lock types.LockFile, createdAt time.Time) error
}
