package core

import (
	"fmt"
	"strconv"
	"strings"

	"pkgmanifest/internal/types"
)

// ParseVersion parses a strict "major.minor.patch" triple. Each component
// must be a non-negative decimal integer.
func ParseVersion(raw string) (types.Version, error) {
	value := strings.TrimSpace(raw)
	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return types.Version{}, invalidVersion(raw)
	}
	var components [3]int
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return types.Version{}, invalidVersion(raw)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return types.Version{}, invalidVersion(raw)
		}
		components[i] = n
	}
	return types.Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

func invalidVersion(raw string) error {
	return manifestError(types.ErrorKindInvalidVersionFormat, raw,
		fmt.Sprintf("invalid version format: %q", raw))
}

// ExactVersion parses raw and pins it exactly.
func ExactVersion(raw string) (types.VersionConstraint, error) {
	version, err := ParseVersion(raw)
	if err != nil {
		return types.VersionConstraint{}, err
	}
	return types.ExactConstraint(version), nil
}

// VersionRange builds an inclusive range. The lower bound must not
// exceed the upper bound.
func VersionRange(lower string, upper string) (types.VersionConstraint, error) {
	lo, err := ParseVersion(lower)
	if err != nil {
		return types.VersionConstraint{}, err
	}
	hi, err := ParseVersion(upper)
	if err != nil {
		return types.VersionConstraint{}, err
	}
	if lo.Compare(hi) > 0 {
		return types.VersionConstraint{}, manifestError(types.ErrorKindInvalidConstraint, lower,
			fmt.Sprintf("invalid version range: %s is above %s", lo, hi))
	}
	return types.RangeConstraint(lo, hi), nil
}

// UpToNextMajor accepts raw and every later version below the next
// major release.
func UpToNextMajor(raw string) (types.VersionConstraint, error) {
	version, err := ParseVersion(raw)
	if err != nil {
		return types.VersionConstraint{}, err
	}
	constraint := types.RangeConstraint(version, types.Version{Major: version.Major + 1})
	constraint.UpperExclusive = true
	return constraint, nil
}

// UpToNextMinor accepts raw and every later patch of the same minor
// release.
func UpToNextMinor(raw string) (types.VersionConstraint, error) {
	version, err := ParseVersion(raw)
	if err != nil {
		return types.VersionConstraint{}, err
	}
	constraint := types.RangeConstraint(version, types.Version{Major: version.Major, Minor: version.Minor + 1})
	constraint.UpperExclusive = true
	return constraint, nil
}
