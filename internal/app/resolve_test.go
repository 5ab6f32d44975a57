package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgmanifest/internal/adapters"
	"pkgmanifest/internal/shared"
	"pkgmanifest/internal/types"
)

func TestResolveApp(t *testing.T) {
	outDir := t.TempDir()
	service := NewService()
	result, err := service.Resolve(t.Context(), ResolveRequest{
		ManifestPath: fixture(t, "app-suite.yaml"),
		RepoIndex:    fixture(t, "repo-index.yaml"),
		OutputDir:    outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, adapters.LockFileName), result.LockPath)

	want := []types.LockPin{
		{Identity: "firebase-ios-sdk", Location: "https://github.com/firebase/firebase-ios-sdk.git", Version: "11.6.0"},
		{Identity: "swift-collections", Location: "git@github.com:apple/swift-collections.git", Version: "1.1.4"},
		{Identity: "swift-log", Location: "https://github.com/apple/swift-log.git", Version: "1.5.4"},
	}
	if diff := cmp.Diff(want, result.Pins); diff != "" {
		t.Fatalf("unexpected pins (-want +got):\n%s", diff)
	}

	lock, err := service.LockReader.ReadLock(result.LockPath)
	require.NoError(t, err)
	assert.Equal(t, "AppSuite", lock.Package)
	if diff := cmp.Diff(want, lock.Pins); diff != "" {
		t.Fatalf("unexpected lock pins (-want +got):\n%s", diff)
	}
}

func TestResolveRequiresInputs(t *testing.T) {
	service := NewService()
	_, err := service.Resolve(t.Context(), ResolveRequest{ManifestPath: fixture(t, "package-b.yaml"), OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, shared.ErrorCode(err))

	_, err = service.Resolve(t.Context(), ResolveRequest{ManifestPath: fixture(t, "package-b.yaml"), RepoIndex: fixture(t, "repo-index.yaml")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, shared.ErrorCode(err))
}

func TestResolveInvalidManifestWritesNothing(t *testing.T) {
	outDir := t.TempDir()
	_, err := NewService().Resolve(t.Context(), ResolveRequest{
		ManifestPath: fixture(t, "package-b-unresolved.yaml"),
		RepoIndex:    fixture(t, "repo-index.yaml"),
		OutputDir:    outDir,
	})
	require.ErrorIs(t, err, types.ErrUnresolvedDependency)
	assert.NoFileExists(t, filepath.Join(outDir, adapters.LockFileName))
}

func TestResolveWritesSBOM(t *testing.T) {
	outDir := t.TempDir()
	service := NewService()
	service.Clock = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	result, err := service.Resolve(t.Context(), ResolveRequest{
		ManifestPath: fixture(t, "app-suite.yaml"),
		RepoIndex:    fixture(t, "repo-index.yaml"),
		OutputDir:    outDir,
		WriteSBOM:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, adapters.SBOMFileName), result.SBOMPath)

	data, err := os.ReadFile(result.SBOMPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"created": "2026-03-01T12:00:00Z"`)
	assert.Contains(t, string(data), `"name": "swift-collections"`)
	assert.Contains(t, string(data), `"versionInfo": "1.1.4"`)
}

func TestResolveSkipsSBOMByDefault(t *testing.T) {
	outDir := t.TempDir()
	result, err := NewService().Resolve(t.Context(), ResolveRequest{
		ManifestPath: fixture(t, "app-suite.yaml"),
		RepoIndex:    fixture(t, "repo-index.yaml"),
		OutputDir:    outDir,
	})
	require.NoError(t, err)
	assert.Empty(t, result.SBOMPath)
	assert.NoFileExists(t, filepath.Join(outDir, adapters.SBOMFileName))
}
