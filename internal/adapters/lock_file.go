package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgmanifest/internal/ports"
	"pkgmanifest/internal/types"
)

const LockFileName = "manifest.lock"

type LockFileAdapter struct{}

func NewLockFileAdapter() LockFileAdapter {
	return LockFileAdapter{}
}

func (a LockFileAdapter) WriteLock(path string, lock types.LockFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create lock directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(lock)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode lock file").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write lock file").
			WithCause(err)
	}
	return nil
}

func (a LockFileAdapter) ReadLock(path string) (types.LockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("lock file not found").
			WithCause(err)
	}
	var lock types.LockFile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid lock file format").
			WithCause(err)
	}
	return lock, nil
}

var (
	_ ports.LockWriterPort = LockFileAdapter{}
	_ ports.LockReaderPort = LockFileAdapter{}
)
