package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgmanifest/internal/adapters"
	"pkgmanifest/internal/core"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	indexPath := strings.TrimSpace(req.RepoIndex)
	if indexPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repo index path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	manifest, err := s.LoadAndValidate(ctx, req.ManifestPath)
	if err != nil {
		return ResolveResult{}, err
	}
	resolver := core.NewResolverCore(s.RepoIndex(indexPath))
	lock, err := resolver.Resolve(ctx, manifest)
	if err != nil {
		return ResolveResult{}, err
	}
	lockPath := filepath.Join(outputDir, adapters.LockFileName)
	if err := s.LockWriter.WriteLock(lockPath, lock); err != nil {
		return ResolveResult{}, err
	}
	log.Ctx(ctx).Info().Str("package", manifest.Name).Str("lock", lockPath).Int("pins", len(lock.Pins)).Msg("lock file written")
	result := ResolveResult{
		PackageName: manifest.Name,
		LockPath:    lockPath,
		Pins:        lock.Pins,
	}
	if req.WriteSBOM {
		sbomPath := filepath.Join(outputDir, adapters.SBOMFileName)
		if err := s.SBOM.WriteSBOM(sbomPath, lock, s.now()); err != nil {
			return ResolveResult{}, err
		}
		log.Ctx(ctx).Info().Str("sbom", sbomPath).Msg("sbom written")
		result.SBOMPath = sbomPath
	}
	return result, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}
