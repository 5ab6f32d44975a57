package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// ValidateWorkspace validates every manifest found below req.Root. Each
// manifest stops at its own first failure; the scan continues across
// manifests and returns an error when any of them failed.
func (s Service) ValidateWorkspace(ctx context.Context, req ValidateWorkspaceRequest) (ValidateWorkspaceResult, error) {
	root := strings.TrimSpace(req.Root)
	if root == "" {
		return ValidateWorkspaceResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is required")
	}
	paths, err := s.Workspace.FindManifests(root)
	if err != nil {
		return ValidateWorkspaceResult{}, err
	}
	if len(paths) == 0 {
		return ValidateWorkspaceResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no manifests found under %s", root))
	}

	result := ValidateWorkspaceResult{}
	for _, path := range paths {
		entry := WorkspaceManifest{Path: path}
		manifest, err := s.LoadAndValidate(ctx, path)
		if err != nil {
			entry.Err = err
			result.Failed++
			log.Ctx(ctx).Debug().Str("manifest", path).Err(err).Msg("manifest failed validation")
		} else {
			entry.PackageName = manifest.Name
		}
		result.Manifests = append(result.Manifests, entry)
	}
	if result.Failed > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%d of %d manifests failed validation", result.Failed, len(paths)))
	}
	return result, nil
}
