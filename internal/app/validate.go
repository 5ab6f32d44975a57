package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgmanifest/internal/core"
	"pkgmanifest/internal/types"
)

// LoadAndValidate reads the manifest at source, converts it and
// validates it. The returned descriptor is only meaningful when err is
// nil.
func (s Service) LoadAndValidate(ctx context.Context, source string) (types.ManifestDescriptor, error) {
	path := strings.TrimSpace(source)
	if path == "" {
		return types.ManifestDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	doc, err := s.ManifestSource.LoadDocument(path)
	if err != nil {
		return types.ManifestDescriptor{}, err
	}
	manifest, err := core.NewManifestBuilder().Build(ctx, doc)
	if err != nil {
		return types.ManifestDescriptor{}, err
	}
	if err := core.NewManifestValidator().Validate(ctx, manifest); err != nil {
		return types.ManifestDescriptor{}, err
	}
	return manifest, nil
}

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifest, err := s.LoadAndValidate(ctx, req.ManifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		PackageName: manifest.Name,
		Targets:     len(manifest.Targets),
		Products:    len(manifest.Products),
	}, nil
}
