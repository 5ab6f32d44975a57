package app

import (
	"context"
	"strings"

	"pkgmanifest/internal/core"
	"pkgmanifest/internal/types"
)

// Inspect describes a validated manifest: targets in build order, products
// and dependencies. When a lock file is given the locked version of each
// dependency is included.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	manifest, err := s.LoadAndValidate(ctx, req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	locked := map[string]string{}
	if lockPath := strings.TrimSpace(req.LockPath); lockPath != "" {
		lock, err := s.LockReader.ReadLock(lockPath)
		if err != nil {
			return InspectResult{}, err
		}
		for _, pin := range lock.Pins {
			locked[pin.Identity] = pin.Version
		}
	}

	order, err := core.NewTargetGraph(manifest.Targets).BuildOrder()
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		PackageName:  manifest.Name,
		ToolsVersion: manifest.ToolsVersion,
	}
	for _, name := range order {
		target, _ := manifest.Target(name)
		result.BuildOrder = append(result.BuildOrder, InspectTarget{
			Name:      target.Name,
			Kind:      target.Kind,
			DependsOn: target.ReferencedNames(),
		})
	}
	for _, product := range manifest.Products {
		result.Products = append(result.Products, InspectProduct{
			Name:    product.Name,
			Kind:    product.Kind,
			Targets: product.ExposedTargets,
		})
	}
	for _, dep := range manifest.Dependencies {
		result.Dependencies = append(result.Dependencies, summarizeDependency(dep, locked))
	}
	return result, nil
}

func summarizeDependency(dep types.DependencyRef, locked map[string]string) InspectDependency {
	identity := dep.Identity()
	return InspectDependency{
		Identity:   identity,
		Location:   dep.Identifier,
		Constraint: dep.Constraint.String(),
		Locked:     locked[identity],
	}
}
