package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"pkgmanifest/internal/types"
)

var validTargetKinds = map[types.TargetKind]struct{}{
	types.TargetKindLibrary:    {},
	types.TargetKindTest:       {},
	types.TargetKindExecutable: {},
}

var validProductKinds = map[types.ProductKind]struct{}{
	types.ProductKindLibrary:    {},
	types.ProductKindExecutable: {},
}

type ManifestBuilder struct{}

func NewManifestBuilder() ManifestBuilder {
	return ManifestBuilder{}
}

// Build converts a parsed document into a descriptor. It parses version
// requirements and applies kind defaults; reference checks are left to
// ManifestValidator.
func (b ManifestBuilder) Build(ctx context.Context, doc types.ManifestDocument) (types.ManifestDescriptor, error) {
	manifest := types.ManifestDescriptor{
		Name:         strings.TrimSpace(doc.Name),
		ToolsVersion: strings.TrimSpace(doc.ToolsVersion),
	}
	for _, product := range doc.Products {
		kind := product.Kind
		if kind == "" {
			kind = types.ProductKindLibrary
		}
		if _, ok := validProductKinds[kind]; !ok {
			return types.ManifestDescriptor{}, manifestError(types.ErrorKindInvalidKind, product.Name,
				fmt.Sprintf("product %s has invalid kind %s", product.Name, product.Kind))
		}
		manifest.Products = append(manifest.Products, types.Product{
			Name:           strings.TrimSpace(product.Name),
			Kind:           kind,
			ExposedTargets: trimAll(product.Targets),
		})
	}
	for _, dep := range doc.Dependencies {
		constraint, err := parseRequirement(dep)
		if err != nil {
			return types.ManifestDescriptor{}, err
		}
		manifest.Dependencies = append(manifest.Dependencies, types.DependencyRef{
			Identifier: strings.TrimSpace(dep.URL),
			Constraint: constraint,
			Products:   trimAll(dep.Products),
		})
	}
	for _, target := range doc.Targets {
		kind := target.Type
		if kind == "" {
			kind = types.TargetKindLibrary
		}
		if _, ok := validTargetKinds[kind]; !ok {
			return types.ManifestDescriptor{}, manifestError(types.ErrorKindInvalidKind, target.Name,
				fmt.Sprintf("target %s has invalid type %s", target.Name, target.Type))
		}
		manifest.Targets = append(manifest.Targets, types.Target{
			Name:      strings.TrimSpace(target.Name),
			Kind:      kind,
			DependsOn: trimAll(target.Dependencies),
		})
	}
	log.Ctx(ctx).Debug().Str("package", manifest.Name).Msg("manifest built")
	return manifest, nil
}

func parseRequirement(dep types.DependencyDocument) (types.VersionConstraint, error) {
	name := strings.TrimSpace(dep.URL)
	var (
		constraint types.VersionConstraint
		err        error
		count      int
	)
	if dep.Exact != nil {
		count++
		constraint, err = ExactVersion(*dep.Exact)
	}
	if dep.From != nil {
		count++
		constraint, err = UpToNextMajor(*dep.From)
	}
	if dep.UpToNextMajor != nil {
		count++
		constraint, err = UpToNextMajor(*dep.UpToNextMajor)
	}
	if dep.UpToNextMinor != nil {
		count++
		constraint, err = UpToNextMinor(*dep.UpToNextMinor)
	}
	if dep.Range != nil {
		count++
		constraint, err = VersionRange(dep.Range.From, dep.Range.To)
	}
	switch {
	case count == 0:
		return types.VersionConstraint{}, manifestError(types.ErrorKindInvalidConstraint, name,
			fmt.Sprintf("dependency %s declares no version requirement", name))
	case count > 1:
		return types.VersionConstraint{}, manifestError(types.ErrorKindInvalidConstraint, name,
			fmt.Sprintf("dependency %s declares more than one version requirement", name))
	case err != nil:
		return types.VersionConstraint{}, err
	}
	return constraint, nil
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, strings.TrimSpace(value))
	}
	return out
}
