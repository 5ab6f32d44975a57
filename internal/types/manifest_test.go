package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyIdentity(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"https://github.com/firebase/firebase-ios-sdk.git", "firebase-ios-sdk"},
		{"https://github.com/apple/Swift-Log", "swift-log"},
		{"https://github.com/apple/swift-log/", "swift-log"},
		{"git@github.com:apple/swift-collections.git", "swift-collections"},
		{"git@example.com:tools.git", "tools"},
		{"../local/PackageC", "packagec"},
		{"", ""},
	}
	for _, tt := range tests {
		got := DependencyRef{Identifier: tt.identifier}.Identity()
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("identity of %q (-want +got):\n%s", tt.identifier, diff)
		}
	}
}

func TestDependencyEqualByIdentifier(t *testing.T) {
	a := DependencyRef{Identifier: "https://github.com/apple/swift-log.git", Constraint: ExactConstraint(Version{1, 0, 0})}
	b := DependencyRef{Identifier: "https://github.com/apple/swift-log.git", Constraint: ExactConstraint(Version{2, 0, 0})}
	c := DependencyRef{Identifier: "https://example.com/apple/swift-log.git"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestManifestTargetLookup(t *testing.T) {
	manifest := ManifestDescriptor{
		Targets: []Target{
			{Name: "PackageB", Kind: TargetKindLibrary},
			{Name: "PackageBTests", Kind: TargetKindTest, DependsOn: []string{"PackageB"}},
		},
	}
	assert.Equal(t, []string{"PackageB", "PackageBTests"}, manifest.TargetNames())

	target, ok := manifest.Target("PackageBTests")
	require.True(t, ok)
	assert.Equal(t, []string{"PackageB"}, target.ReferencedNames())

	_, ok = manifest.Target("missing")
	assert.False(t, ok)
}

func TestManifestErrorMatching(t *testing.T) {
	err := fmt.Errorf("loading: %w", &ManifestError{
		Kind: ErrorKindUnresolvedDependency,
		Name: "PackageC",
		Err:  errors.New("target PackageBTests depends on unresolved name PackageC"),
	})
	assert.ErrorIs(t, err, ErrUnresolvedDependency)
	assert.NotErrorIs(t, err, ErrCyclicDependency)

	var manifestErr *ManifestError
	require.ErrorAs(t, err, &manifestErr)
	assert.Equal(t, "PackageC", manifestErr.Name)
	assert.Contains(t, err.Error(), "PackageC")
}

func TestManifestErrorWithoutCause(t *testing.T) {
	assert.Equal(t, "CyclicDependency", (&ManifestError{Kind: ErrorKindCyclicDependency}).Error())
	assert.Equal(t, "UnresolvedDependency(PackageC)", (&ManifestError{Kind: ErrorKindUnresolvedDependency, Name: "PackageC"}).Error())
}
