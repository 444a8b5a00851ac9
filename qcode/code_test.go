package qcode

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCode(t *testing.T, variant geometry.Variant, l int) *Code {
	t.Helper()
	g, err := geometry.New(variant, l)
	require.NoError(t, err)
	c, err := New(g, 0.1, 0.1, IndependentModel{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return c
}

func syndromeSetBits(syndrome []int8) []int {
	var set []int
	for i, b := range syndrome {
		if b == 1 {
			set = append(set, i)
		}
	}
	return set
}

// TestScenarioA_StabilizerHasZeroSyndrome ports spec.md Scenario A: a
// stabilizer-equivalent error set on the bounded rhombic L=4 lattice
// produces an all-zero syndrome and passes checkCorrection.
func TestScenarioA_StabilizerHasZeroSyndrome(t *testing.T) {
	c := newTestCode(t, geometry.RhombicBounded, 4)
	c.SetError([]int{5, 8, 9, 11, 13, 14, 26, 28})
	c.CalculateSyndrome()
	assert.Empty(t, syndromeSetBits(c.Syndrome))
	assert.True(t, c.CheckCorrection())
}

// TestScenarioB_LogicalXHasZeroSyndromeButFailsCorrection ports spec.md
// Scenario B: a logical-X-equivalent error set produces a zero syndrome
// (it is undetectable) but fails checkCorrection (it is a genuine logical
// fault, not a trivial stabilizer).
func TestScenarioB_LogicalXHasZeroSyndromeButFailsCorrection(t *testing.T) {
	c := newTestCode(t, geometry.RhombicBounded, 4)
	c.SetError([]int{0, 3, 5, 8, 9, 18, 30, 32, 36, 39, 41, 44, 45})
	c.CalculateSyndrome()
	assert.Empty(t, syndromeSetBits(c.Syndrome))
	assert.False(t, c.CheckCorrection())
}

// TestScenarioC_SingleFaultTwoSyndromeBits ports the first half of
// spec.md Scenario C: a single-face error on the bounded rhombic L=4
// lattice sets exactly two syndrome bits (the two edges of the 4-cycle
// bounding face 0 that carry a defined stabilizer at the lattice boundary).
func TestScenarioC_SingleFaultTwoSyndromeBits(t *testing.T) {
	c := newTestCode(t, geometry.RhombicBounded, 4)
	c.SetError([]int{0})
	c.CalculateSyndrome()
	assert.Len(t, syndromeSetBits(c.Syndrome), 2)
}

// TestScenarioC_SingleFaultCorrectedByOneSweep ports the second half of
// spec.md Scenario C: on the toric rhombic L=4 lattice, a single-face
// error is fully corrected by one greedy sweep("xyz"), leaving a clean
// syndrome.
func TestScenarioC_SingleFaultCorrectedByOneSweep(t *testing.T) {
	c := newTestCode(t, geometry.RhombicToric, 4)
	c.SetError([]int{0})
	c.CalculateSyndrome()
	require.NoError(t, c.Step(geometry.DirXYZ, true))
	c.CalculateSyndrome()
	assert.Empty(t, syndromeSetBits(c.Syndrome))
}

// TestScenarioD_CubicBoundarySyndrome ports the first half of spec.md
// Scenario D: setError({0,1}) on the bounded cubic L=4 lattice sets
// exactly the syndrome bits {29, 40, 122}.
func TestScenarioD_CubicBoundarySyndrome(t *testing.T) {
	c := newTestCode(t, geometry.CubicBounded, 4)
	c.SetError([]int{0, 1})
	c.CalculateSyndrome()
	assert.ElementsMatch(t, []int{29, 40, 122}, syndromeSetBits(c.Syndrome))
}

// TestScenarioD_PostSweepSyndromes ports the second half of spec.md
// Scenario D: starting fresh each time from setError({0,1})'s {29,40,122}
// syndrome, one greedy sweep in each of three directions produces the
// literal post-sweep syndromes the spec hands over: "xyz" is a no-op,
// "yz" yields {122,141}, "-yz" yields {10,29}.
func TestScenarioD_PostSweepSyndromes(t *testing.T) {
	cases := []struct {
		dir  geometry.SweepDir
		want []int
	}{
		{geometry.DirXYZ, []int{29, 40, 122}},
		{geometry.DirYZ, []int{122, 141}},
		{geometry.DirNYZ, []int{10, 29}},
	}
	for _, tc := range cases {
		c := newTestCode(t, geometry.CubicBounded, 4)
		c.SetError([]int{0, 1})
		c.CalculateSyndrome()
		require.NoError(t, c.Step(tc.dir, true))
		c.CalculateSyndrome()
		assert.ElementsMatch(t, tc.want, syndromeSetBits(c.Syndrome), "direction %s", tc.dir)
	}
}

// TestCalculateSyndrome_Idempotent checks spec.md property 6: recomputing
// the syndrome from the same error twice leaves it unchanged.
func TestCalculateSyndrome_Idempotent(t *testing.T) {
	c := newTestCode(t, geometry.CubicToric, 4)
	c.SetError([]int{2, 7, 19})
	c.CalculateSyndrome()
	first := append([]int8(nil), c.Syndrome...)
	c.CalculateSyndrome()
	assert.Equal(t, first, c.Syndrome)
}

// TestCheckExtremalVertex_EmptySyndromeNeverExtremal checks that a vertex
// with no syndrome-carrying incident edges is never reported extremal,
// regardless of direction.
func TestCheckExtremalVertex_EmptySyndromeNeverExtremal(t *testing.T) {
	c := newTestCode(t, geometry.CubicToric, 4)
	for _, dir := range geometry.AllSweepDirs {
		assert.False(t, c.checkExtremalVertex(0, dir))
	}
}

// TestSetError_ReplacesWholesale checks that a second SetError call fully
// replaces, rather than merges with, the first.
func TestSetError_ReplacesWholesale(t *testing.T) {
	c := newTestCode(t, geometry.CubicToric, 4)
	c.SetError([]int{1, 2, 3})
	c.SetError([]int{9})
	_, hasOne := c.Error[1]
	_, hasNine := c.Error[9]
	assert.False(t, hasOne)
	assert.True(t, hasNine)
	assert.Len(t, c.Error, 1)
}

// TestGenerateDataError_ZeroProbabilityLeavesErrorEmpty checks the boundary
// case of the independent fault model.
func TestGenerateDataError_ZeroProbabilityLeavesErrorEmpty(t *testing.T) {
	g, err := geometry.New(geometry.CubicToric, 4)
	require.NoError(t, err)
	c, err := New(g, 0, 0, IndependentModel{}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	c.GenerateDataError()
	assert.Empty(t, c.Error)
}

// TestGenerateDataError_CertainProbabilityFlipsEveryFace checks the other
// boundary case: p=1 must toggle every face's error bit.
func TestGenerateDataError_CertainProbabilityFlipsEveryFace(t *testing.T) {
	g, err := geometry.New(geometry.CubicToric, 4)
	require.NoError(t, err)
	c, err := New(g, 1, 0, IndependentModel{}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	c.GenerateDataError()
	assert.Len(t, c.Error, len(g.FaceToEdges))
}

// TestClusterModel_ClustersHoldAtLeastTwoFaces checks that NewClusterModel
// drops vertices with fewer than two incident faces: every cluster it
// builds holds at least two faces.
func TestClusterModel_ClustersHoldAtLeastTwoFaces(t *testing.T) {
	g, err := geometry.New(geometry.CubicToric, 4)
	require.NoError(t, err)
	model := NewClusterModel(g.VertexToFaces)
	for _, cluster := range model.clusters {
		assert.GreaterOrEqual(t, len(cluster), 2)
	}
}

func TestNew_RejectsOutOfRangeProbabilities(t *testing.T) {
	g, err := geometry.New(geometry.CubicToric, 4)
	require.NoError(t, err)
	_, err = New(g, -0.1, 0.1, IndependentModel{}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = New(g, 0.1, 1.5, IndependentModel{}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
