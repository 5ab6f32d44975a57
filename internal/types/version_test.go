package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 2, 3}, Version{1, 2, 3}, 0},
		{Version{1, 2, 3}, Version{1, 2, 4}, -1},
		{Version{1, 3, 0}, Version{1, 2, 9}, 1},
		{Version{2, 0, 0}, Version{1, 99, 99}, 1},
		{Version{0, 0, 1}, Version{0, 1, 0}, -1},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.a.Compare(tt.b)); diff != "" {
			t.Fatalf("compare %s %s (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
}

func TestExactConstraintMatches(t *testing.T) {
	constraint := ExactConstraint(Version{1, 2, 3})
	assert.True(t, constraint.Matches(Version{1, 2, 3}))
	assert.False(t, constraint.Matches(Version{1, 2, 4}))
	assert.False(t, constraint.Matches(Version{1, 2, 2}))
}

func TestRangeConstraintMatches(t *testing.T) {
	constraint := RangeConstraint(Version{1, 0, 0}, Version{2, 0, 0})
	assert.True(t, constraint.Matches(Version{1, 5, 0}))
	assert.True(t, constraint.Matches(Version{1, 0, 0}), "lower bound is inclusive")
	assert.True(t, constraint.Matches(Version{2, 0, 0}), "upper bound is inclusive")
	assert.False(t, constraint.Matches(Version{2, 0, 1}))
	assert.False(t, constraint.Matches(Version{0, 9, 9}))
}

func TestRangeConstraintUpperExclusive(t *testing.T) {
	constraint := RangeConstraint(Version{1, 0, 0}, Version{2, 0, 0})
	constraint.UpperExclusive = true
	assert.True(t, constraint.Matches(Version{1, 99, 0}))
	assert.False(t, constraint.Matches(Version{2, 0, 0}))
}

func TestZeroConstraintMatchesNothing(t *testing.T) {
	assert.False(t, VersionConstraint{}.Matches(Version{}))
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "==11.5.0", ExactConstraint(Version{11, 5, 0}).String())
	inclusive := RangeConstraint(Version{1, 0, 0}, Version{2, 0, 0})
	assert.Equal(t, ">=1.0.0,<=2.0.0", inclusive.String())
	inclusive.UpperExclusive = true
	assert.Equal(t, ">=1.0.0,<2.0.0", inclusive.String())
}
