package types

import "strings"

// DependencyRef is an external package pinned by a version constraint.
// Products optionally lists the product names the package provides so
// targets can depend on them by name.
type DependencyRef struct {
	Identifier string
	Constraint VersionConstraint
	Products   []string
}

// Identity is the short package name derived from the identifier: the
// last path segment, lower-cased, without a ".git" suffix.
func (d DependencyRef) Identity() string {
	value := strings.TrimRight(strings.TrimSpace(d.Identifier), "/")
	if idx := strings.LastIndexAny(value, "/:"); idx >= 0 {
		value = value[idx+1:]
	}
	value = strings.TrimSuffix(strings.ToLower(value), ".git")
	return value
}

// Equal compares dependencies by identifier only.
func (d DependencyRef) Equal(other DependencyRef) bool {
	return strings.TrimSpace(d.Identifier) == strings.TrimSpace(other.Identifier)
}

type Target struct {
	Name      string
	Kind      TargetKind
	DependsOn []string
}

func (t Target) ReferencedNames() []string {
	return t.DependsOn
}

type Product struct {
	Name           string
	Kind           ProductKind
	ExposedTargets []string
}

// ManifestDescriptor is the in-memory form of a package manifest. It is
// built once from a document, validated, and treated as read-only.
type ManifestDescriptor struct {
	Name         string
	ToolsVersion string
	Products     []Product
	Dependencies []DependencyRef
	Targets      []Target
}

// TargetNames returns the declared target names in declaration order.
func (m ManifestDescriptor) TargetNames() []string {
	names := make([]string, 0, len(m.Targets))
	for _, target := range m.Targets {
		names = append(names, target.Name)
	}
	return names
}

// Target looks up a target by name.
func (m ManifestDescriptor) Target(name string) (Target, bool) {
	for _, target := range m.Targets {
		if target.Name == name {
			return target, true
		}
	}
	return Target{}, false
}
