package types

import "fmt"

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 comparing v and other component by
// component.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Patch - other.Patch)
	}
}

func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}

// VersionConstraint is either an exact pin or a version range. For
// ranges the lower bound is always inclusive; the upper bound is
// inclusive unless UpperExclusive is set.
type VersionConstraint struct {
	Kind           ConstraintKind
	Exact          Version
	Lower          Version
	Upper          Version
	UpperExclusive bool
}

func ExactConstraint(version Version) VersionConstraint {
	return VersionConstraint{Kind: ConstraintKindExact, Exact: version}
}

func RangeConstraint(lower Version, upper Version) VersionConstraint {
	return VersionConstraint{Kind: ConstraintKindRange, Lower: lower, Upper: upper}
}

// Matches reports whether candidate satisfies the constraint.
func (c VersionConstraint) Matches(candidate Version) bool {
	switch c.Kind {
	case ConstraintKindExact:
		return candidate == c.Exact
	case ConstraintKindRange:
		if candidate.Compare(c.Lower) < 0 {
			return false
		}
		if c.UpperExclusive {
			return candidate.Compare(c.Upper) < 0
		}
		return candidate.Compare(c.Upper) <= 0
	default:
		return false
	}
}

func (c VersionConstraint) String() string {
	switch c.Kind {
	case ConstraintKindExact:
		return "==" + c.Exact.String()
	case ConstraintKindRange:
		upper := "<="
		if c.UpperExclusive {
			upper = "<"
		}
		return fmt.Sprintf(">=%s,%s%s", c.Lower, upper, c.Upper)
	default:
		return ""
	}
}
