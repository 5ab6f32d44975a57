package types

type TargetKind string

const (
	TargetKindLibrary    TargetKind = "library"
	TargetKindTest       TargetKind = "test"
	TargetKindExecutable TargetKind = "executable"
)

type ProductKind string

const (
	ProductKindLibrary    ProductKind = "library"
	ProductKindExecutable ProductKind = "executable"
)

type ConstraintKind string

const (
	ConstraintKindExact ConstraintKind = "exact"
	ConstraintKindRange ConstraintKind = "range"
)
