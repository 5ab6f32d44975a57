package ports

import "pkgmanifest/internal/types"

type LockWriterPort interface {
	WriteLock(path string, lock types.LockFile) error
}

type LockReaderPort interface {
	ReadLock(path string) (types.LockFile, error)
}
