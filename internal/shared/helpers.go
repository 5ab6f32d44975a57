// Package shared provides error helpers used across the cli, app and
// core packages.
package shared

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorCode returns the errbuilder code of the first builder in err's
// chain, so codes survive wrapping by types.ManifestError.
func ErrorCode(err error) errbuilder.ErrCode {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return errbuilder.CodeOf(builder)
	}
	return errbuilder.CodeOf(err)
}

// ErrorMessage returns the builder message without code decoration, or
// err.Error() when no builder is present.
func ErrorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
