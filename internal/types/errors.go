package types

import "fmt"

type ErrorKind string

const (
	ErrorKindInvalidVersionFormat   ErrorKind = "InvalidVersionFormat"
	ErrorKindEmptyPackageName       ErrorKind = "EmptyPackageName"
	ErrorKindEmptyTargetName        ErrorKind = "EmptyTargetName"
	ErrorKindDuplicateTargetName    ErrorKind = "DuplicateTargetName"
	ErrorKindUnknownTargetReference ErrorKind = "UnknownTargetReference"
	ErrorKindUnresolvedDependency   ErrorKind = "UnresolvedDependency"
	ErrorKindCyclicDependency       ErrorKind = "CyclicDependency"
	ErrorKindInvalidConstraint      ErrorKind = "InvalidConstraint"
	ErrorKindDuplicateDependency    ErrorKind = "DuplicateDependency"
	ErrorKindInvalidKind            ErrorKind = "InvalidKind"
)

// ManifestError tags a validation failure with its kind and the name it
// concerns. The wrapped error carries the errbuilder code and message.
type ManifestError struct {
	Kind ErrorKind
	Name string
	Err  error
}

func (e *ManifestError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Name != "" {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Name)
	}
	return string(e.Kind)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// Is matches any ManifestError of the same kind, so the sentinels below
// work with errors.Is regardless of name.
func (e *ManifestError) Is(target error) bool {
	other, ok := target.(*ManifestError)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

var (
	ErrInvalidVersionFormat   = &ManifestError{Kind: ErrorKindInvalidVersionFormat}
	ErrEmptyPackageName       = &ManifestError{Kind: ErrorKindEmptyPackageName}
	ErrEmptyTargetName        = &ManifestError{Kind: ErrorKindEmptyTargetName}
	ErrDuplicateTargetName    = &ManifestError{Kind: ErrorKindDuplicateTargetName}
	ErrUnknownTargetReference = &ManifestError{Kind: ErrorKindUnknownTargetReference}
	ErrUnresolvedDependency   = &ManifestError{Kind: ErrorKindUnresolvedDependency}
	ErrCyclicDependency       = &ManifestError{Kind: ErrorKindCyclicDependency}
	ErrInvalidConstraint      = &ManifestError{Kind: ErrorKindInvalidConstraint}
	ErrDuplicateDependency    = &ManifestError{Kind: ErrorKindDuplicateDependency}
	ErrInvalidKind            = &ManifestError{Kind: ErrorKindInvalidKind}
)
