package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgmanifest/internal/shared"
	"pkgmanifest/internal/types"
)

func TestValidateWorkspaceFixture(t *testing.T) {
	result, err := NewService().ValidateWorkspace(t.Context(), ValidateWorkspaceRequest{Root: fixture(t, "workspace")})
	require.NoError(t, err)
	require.Len(t, result.Manifests, 2)
	assert.Equal(t, "PackageA", result.Manifests[0].PackageName)
	assert.Equal(t, "PackageB", result.Manifests[1].PackageName)
	assert.Zero(t, result.Failed)
}

func TestValidateWorkspaceReportsEveryFailure(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "Good")
	bad := filepath.Join(root, "Bad")
	require.NoError(t, os.MkdirAll(good, 0755))
	require.NoError(t, os.MkdirAll(bad, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(good, "package.yaml"), []byte("name: Good\ntargets:\n  - name: Good\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "package.yaml"), []byte("name: Bad\ntargets:\n  - name: Bad\n    dependencies: [Bad]\n"), 0644))

	result, err := NewService().ValidateWorkspace(t.Context(), ValidateWorkspaceRequest{Root: root})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, shared.ErrorCode(err))
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Manifests, 2)
	assert.ErrorIs(t, result.Manifests[0].Err, types.ErrCyclicDependency)
	assert.NoError(t, result.Manifests[1].Err)
	assert.Equal(t, "Good", result.Manifests[1].PackageName)
}

func TestValidateWorkspaceEmpty(t *testing.T) {
	_, err := NewService().ValidateWorkspace(t.Context(), ValidateWorkspaceRequest{Root: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, shared.ErrorCode(err))
}
