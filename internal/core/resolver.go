package core

import (
	"context"
	"fmt"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgmanifest/internal/ports"
	"pkgmanifest/internal/types"
)

type ResolverCore struct {
	RepoIndex ports.RepoIndexPort
}

func NewResolverCore(repoIndex ports.RepoIndexPort) ResolverCore {
	return ResolverCore{RepoIndex: repoIndex}
}

// Resolve pins every dependency of a validated manifest to the highest
// available version that satisfies its constraint. Pins are sorted by
// identity.
func (r ResolverCore) Resolve(ctx context.Context, manifest types.ManifestDescriptor) (types.LockFile, error) {
	if r.RepoIndex == nil {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a repo index port")
	}
	assert.NotEmpty(ctx, manifest.Name, "resolver requires a validated manifest")

	lock := types.LockFile{Package: manifest.Name, Pins: []types.LockPin{}}
	for _, dep := range manifest.Dependencies {
		identity := dep.Identity()
		available, err := r.RepoIndex.AvailableVersions(identity)
		if err != nil {
			return types.LockFile{}, err
		}
		version, err := bestCompatibleVersion(ctx, dep, available)
		if err != nil {
			return types.LockFile{}, err
		}
		log.Ctx(ctx).Debug().
			Str("dependency", identity).
			Str("constraint", dep.Constraint.String()).
			Str("version", version.String()).
			Msg("dependency resolved")
		lock.Pins = append(lock.Pins, types.LockPin{
			Identity: identity,
			Location: dep.Identifier,
			Version:  version.String(),
		})
	}
	sort.Slice(lock.Pins, func(i, j int) bool {
		return lock.Pins[i].Identity < lock.Pins[j].Identity
	})
	log.Ctx(ctx).Debug().Int("resolved", len(lock.Pins)).Msg("resolver completed")
	return lock, nil
}

// bestCompatibleVersion selects the highest version from available that
// satisfies the dependency's constraint. Versions that do not parse as a
// triple are skipped.
func bestCompatibleVersion(ctx context.Context, dep types.DependencyRef, available []string) (types.Version, error) {
	identity := dep.Identity()
	if len(available) == 0 {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no available versions for %s", identity))
	}
	var candidates []types.Version
	for _, raw := range available {
		version, err := ParseVersion(raw)
		if err != nil {
			log.Ctx(ctx).Debug().Str("dependency", identity).Str("version", raw).Msg("skipping unparseable version")
			continue
		}
		if dep.Constraint.Matches(version) {
			candidates = append(candidates, version)
		}
	}
	if len(candidates) == 0 {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no compatible version for %s (%s)", identity, dep.Constraint))
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Compare(candidates[j]) > 0
	})
	return candidates[0], nil
}
