package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgmanifest/internal/types"
)

func target(name string, deps ...string) types.Target {
	return types.Target{Name: name, Kind: types.TargetKindLibrary, DependsOn: deps}
}

func TestDetectCycleAcyclic(t *testing.T) {
	graph := NewTargetGraph([]types.Target{
		target("App", "Core", "Net"),
		target("Net", "Core"),
		target("Core"),
	})
	assert.Nil(t, graph.DetectCycle())
}

func TestDetectCycleSelfReference(t *testing.T) {
	graph := NewTargetGraph([]types.Target{target("A", "A")})
	if diff := cmp.Diff([]string{"A", "A"}, graph.DetectCycle()); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}
}

func TestDetectCyclePath(t *testing.T) {
	graph := NewTargetGraph([]types.Target{
		target("Root", "A"),
		target("A", "B"),
		target("B", "C"),
		target("C", "A"),
	})
	if diff := cmp.Diff([]string{"A", "B", "C", "A"}, graph.DetectCycle()); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}
}

func TestDetectCycleIgnoresExternalNames(t *testing.T) {
	graph := NewTargetGraph([]types.Target{
		target("A", "FirebaseAuth"),
		target("B", "A", "firebase-ios-sdk"),
	})
	assert.Nil(t, graph.DetectCycle())
}

func TestDetectCycleDiamondIsNotCycle(t *testing.T) {
	graph := NewTargetGraph([]types.Target{
		target("Top", "Left", "Right"),
		target("Left", "Bottom"),
		target("Right", "Bottom"),
		target("Bottom"),
	})
	assert.Nil(t, graph.DetectCycle())
}

func TestBuildOrder(t *testing.T) {
	graph := NewTargetGraph([]types.Target{
		target("AppMain", "AppKit", "swift-log"),
		target("AppKit", "Core"),
		target("Core"),
		target("AppKitTests", "AppKit"),
	})
	order, err := graph.BuildOrder()
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Core", "AppKit", "AppMain", "AppKitTests"}, order); diff != "" {
		t.Fatalf("unexpected build order (-want +got):\n%s", diff)
	}
}

func TestBuildOrderKeepsDeclarationOrderForIndependentTargets(t *testing.T) {
	graph := NewTargetGraph([]types.Target{target("B"), target("A"), target("C")})
	order, err := graph.BuildOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, order)
}

func TestBuildOrderCycle(t *testing.T) {
	graph := NewTargetGraph([]types.Target{target("A", "B"), target("B", "A")})
	_, err := graph.BuildOrder()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrCyclicDependency)
	assert.Contains(t, err.Error(), "A -> B -> A")
}
