package geometry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsSmallL(t *testing.T) {
	_, err := New(CubicBounded, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(RhombicBounded, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNew_RhombicBoundedAcceptsL3(t *testing.T) {
	// Unlike the cubic family, the rhombic lattice only requires L >= 3
	// (rhombicLattice.cpp:12), not L > 3.
	_, err := New(RhombicBounded, 3)
	require.NoError(t, err)
}

func TestNew_RejectsOddToricL(t *testing.T) {
	_, err := New(RhombicToric, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(CubicToric, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNew_AllVariantsConstruct(t *testing.T) {
	cases := []struct {
		variant Variant
		l       int
	}{
		{RhombicBounded, 5},
		{RhombicToric, 4},
		{CubicBounded, 5},
		{CubicToric, 4},
	}
	for _, tc := range cases {
		t.Run(tc.variant.String(), func(t *testing.T) {
			g, err := New(tc.variant, tc.l)
			require.NoError(t, err)
			assert.NotNil(t, g)
			assert.Greater(t, len(g.FaceToVertices), 0)
			assert.Equal(t, len(g.FaceToVertices), len(g.FaceToEdges))
		})
	}
}

// TestFaceVerticesAndEdgesSorted checks invariant 1/3 of the face
// construction: every recorded face's vertex and edge tuples are sorted
// ascending.
func TestFaceVerticesAndEdgesSorted(t *testing.T) {
	for _, variant := range []Variant{RhombicBounded, RhombicToric, CubicBounded, CubicToric} {
		l := 4
		if !variant.IsToric() {
			l = 5
		}
		g, err := New(variant, l)
		require.NoError(t, err)
		for i, verts := range g.FaceToVertices {
			assert.True(t, sort.IntsAreSorted(verts[:]), "face %d vertices not sorted: %v", i, verts)
			edges := g.FaceToEdges[i]
			assert.True(t, sort.IntsAreSorted(edges[:]), "face %d edges not sorted: %v", i, edges)
		}
	}
}

// TestFindFaceRoundTrip confirms every enumerated face can be recovered by
// its own (sorted) vertex tuple.
func TestFindFaceRoundTrip(t *testing.T) {
	g, err := New(CubicToric, 4)
	require.NoError(t, err)
	for id, verts := range g.FaceToVertices {
		got, err := g.FindFace(verts)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestFindFace_UnknownTupleFails(t *testing.T) {
	g, err := New(CubicToric, 4)
	require.NoError(t, err)
	_, err = g.FindFace([4]int{0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrNotAFace)
}

// TestCoordinateRoundTrip checks IndexToCoordinate/CoordinateToIndex are
// mutual inverses over every legal vertex index for each variant.
func TestCoordinateRoundTrip(t *testing.T) {
	for _, variant := range []Variant{RhombicBounded, RhombicToric, CubicBounded, CubicToric} {
		l := 4
		if !variant.IsToric() {
			l = 5
		}
		g, err := New(variant, l)
		require.NoError(t, err)
		for v := 0; v < g.NumVertices; v++ {
			c, err := g.IndexToCoordinate(v)
			require.NoError(t, err)
			back, err := g.CoordinateToIndex(c)
			require.NoError(t, err)
			assert.Equal(t, v, back)
		}
	}
}

// TestEdgeIndexDistinct checks that every successfully-resolved edge index
// for a given vertex is unique within that vertex's incident set (no two
// distinct (axis, sign) pairs collapse to the same index).
func TestEdgeIndexDistinct(t *testing.T) {
	g, err := New(CubicToric, 4)
	require.NoError(t, err)
	axes := []Axis{AxisX, AxisY, AxisZ}
	for v := 0; v < g.NumVertices; v++ {
		seen := map[int]bool{}
		for _, axis := range axes {
			for _, sign := range []int{1, -1} {
				e, err := g.EdgeIndex(v, axis, sign)
				require.NoError(t, err)
				assert.False(t, seen[e], "vertex %d: duplicate edge index %d", v, e)
				seen[e] = true
			}
		}
	}
}

// TestRhombicToricLogicalsPopulated checks that the toric rhombic lattice
// builds all three logical representatives while the bounded lattice only
// ever populates LogicalZ1.
func TestRhombicToricLogicalsPopulated(t *testing.T) {
	g, err := New(RhombicToric, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, g.LogicalZ1)
	assert.NotEmpty(t, g.LogicalZ2)
	assert.NotEmpty(t, g.LogicalZ3)
}

func TestRhombicBoundedLogicalsOnlyZ1(t *testing.T) {
	g, err := New(RhombicBounded, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, g.LogicalZ1)
	assert.Empty(t, g.LogicalZ2)
	assert.Empty(t, g.LogicalZ3)
}

func TestCubicToricLogicalsPopulated(t *testing.T) {
	g, err := New(CubicToric, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, g.LogicalZ1)
	assert.NotEmpty(t, g.LogicalZ2)
	assert.NotEmpty(t, g.LogicalZ3)
}

func TestCubicBoundedLogicalsOnlyZ1(t *testing.T) {
	g, err := New(CubicBounded, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, g.LogicalZ1)
	assert.Empty(t, g.LogicalZ2)
	assert.Empty(t, g.LogicalZ3)
}

// TestIsValidSyndromeIndex_ToricAlwaysTrue checks that toric variants treat
// every in-range edge as carrying a stabilizer.
func TestIsValidSyndromeIndex_ToricAlwaysTrue(t *testing.T) {
	g, err := New(CubicToric, 4)
	require.NoError(t, err)
	assert.True(t, g.IsValidSyndromeIndex(0))
	assert.True(t, g.IsValidSyndromeIndex(g.NumEdges-1))
	assert.False(t, g.IsValidSyndromeIndex(-1))
	assert.False(t, g.IsValidSyndromeIndex(g.NumEdges))
}

// TestCubicBoundedUpEdgesBoundedByThree checks spec.md's invariant that no
// cubic vertex has more than three up-edges in any single sweep direction.
func TestCubicBoundedUpEdgesBoundedByThree(t *testing.T) {
	g, err := New(CubicBounded, 6)
	require.NoError(t, err)
	for _, dir := range AllSweepDirs {
		table := g.UpEdges[dir]
		for v, edges := range table {
			assert.LessOrEqual(t, len(edges), 3, "vertex %d direction %s has %d up-edges", v, dir, len(edges))
		}
	}
}

// TestRhombicUpEdgesBoundedByFour checks the rhombic analogue: no vertex
// ever has more than four up-edges in a single sweep direction.
func TestRhombicUpEdgesBoundedByFour(t *testing.T) {
	g, err := New(RhombicToric, 4)
	require.NoError(t, err)
	for _, dir := range AllSweepDirs {
		table := g.UpEdges[dir]
		for v, edges := range table {
			assert.LessOrEqual(t, len(edges), 4, "vertex %d direction %s has %d up-edges", v, dir, len(edges))
		}
	}
}
