package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgmanifest/internal/types"
)

// manifestError builds an invalid-argument error tagged with kind so
// callers can match it with errors.Is against the types sentinels.
func manifestError(kind types.ErrorKind, name string, msg string) error {
	return &types.ManifestError{
		Kind: kind,
		Name: name,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg),
	}
}
