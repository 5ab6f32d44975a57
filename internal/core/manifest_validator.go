package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"pkgmanifest/internal/types"
)

type ManifestValidator struct{}

func NewManifestValidator() ManifestValidator {
	return ManifestValidator{}
}

// Validate checks a manifest and returns the first failure found. Checks
// run in a fixed order: package name, target names, products, target
// references, target cycles, dependencies.
func (v ManifestValidator) Validate(ctx context.Context, manifest types.ManifestDescriptor) error {
	if strings.TrimSpace(manifest.Name) == "" {
		return manifestError(types.ErrorKindEmptyPackageName, "", "package name must not be empty")
	}
	targets, err := targetNameSet(manifest.Targets)
	if err != nil {
		return err
	}
	for _, product := range manifest.Products {
		if err := ValidateProduct(product, targets); err != nil {
			return err
		}
	}
	available := dependencyNameSet(manifest.Dependencies)
	for _, target := range manifest.Targets {
		if err := validateTargetReferences(target, targets, available); err != nil {
			return err
		}
	}
	if cycle := NewTargetGraph(manifest.Targets).DetectCycle(); cycle != nil {
		return cycleError(cycle)
	}
	if err := validateDependencies(manifest.Dependencies); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("package", manifest.Name).
		Int("targets", len(manifest.Targets)).
		Int("products", len(manifest.Products)).
		Int("dependencies", len(manifest.Dependencies)).
		Msg("manifest validated")
	return nil
}

// ValidateProduct checks that every target a product exposes exists.
func ValidateProduct(product types.Product, targets map[string]struct{}) error {
	if len(product.ExposedTargets) == 0 {
		return manifestError(types.ErrorKindUnknownTargetReference, product.Name,
			fmt.Sprintf("product %s exposes no targets", product.Name))
	}
	for _, name := range product.ExposedTargets {
		if _, ok := targets[name]; !ok {
			return manifestError(types.ErrorKindUnknownTargetReference, name,
				fmt.Sprintf("product %s exposes unknown target %s", product.Name, name))
		}
	}
	return nil
}

func targetNameSet(targets []types.Target) (map[string]struct{}, error) {
	names := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		if strings.TrimSpace(target.Name) == "" {
			return nil, manifestError(types.ErrorKindEmptyTargetName, "", "target name must not be empty")
		}
		if _, ok := names[target.Name]; ok {
			return nil, manifestError(types.ErrorKindDuplicateTargetName, target.Name,
				fmt.Sprintf("duplicate target name: %s", target.Name))
		}
		names[target.Name] = struct{}{}
	}
	return names, nil
}

// dependencyNameSet collects every name a target may use to refer to an
// external dependency: its identity and the products it declares.
func dependencyNameSet(deps []types.DependencyRef) map[string]struct{} {
	names := map[string]struct{}{}
	for _, dep := range deps {
		if identity := dep.Identity(); identity != "" {
			names[identity] = struct{}{}
		}
		for _, product := range dep.Products {
			names[product] = struct{}{}
		}
	}
	return names
}

// validateTargetReferences resolves each dependsOn entry against all
// target names, including the target's own, so a self reference is
// reported by the cycle check instead of here.
func validateTargetReferences(target types.Target, targets map[string]struct{}, deps map[string]struct{}) error {
	for _, name := range target.ReferencedNames() {
		if _, ok := targets[name]; ok {
			continue
		}
		if _, ok := deps[name]; ok {
			continue
		}
		return manifestError(types.ErrorKindUnresolvedDependency, name,
			fmt.Sprintf("target %s depends on unresolved name %s", target.Name, name))
	}
	return nil
}

func validateDependencies(deps []types.DependencyRef) error {
	seen := map[string]struct{}{}
	for _, dep := range deps {
		identity := dep.Identity()
		if identity == "" {
			return manifestError(types.ErrorKindInvalidConstraint, dep.Identifier,
				"dependency identifier must not be empty")
		}
		if dep.Constraint.Kind != types.ConstraintKindExact && dep.Constraint.Kind != types.ConstraintKindRange {
			return manifestError(types.ErrorKindInvalidConstraint, identity,
				fmt.Sprintf("dependency %s has no version requirement", identity))
		}
		if _, ok := seen[identity]; ok {
			return manifestError(types.ErrorKindDuplicateDependency, identity,
				fmt.Sprintf("duplicate dependency: %s", identity))
		}
		seen[identity] = struct{}{}
	}
	return nil
}
