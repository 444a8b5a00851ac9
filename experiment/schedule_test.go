package experiment

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule_AcceptsAllSevenNames(t *testing.T) {
	names := []string{
		"rotating_XY", "rotating_XZ", "rotating_YZ",
		"alternating_XY", "alternating_XZ", "alternating_YZ",
		"random",
	}
	for _, name := range names {
		s, err := ParseSchedule(name)
		require.NoError(t, err)
		assert.Equal(t, Schedule(name), s)
	}
}

func TestParseSchedule_RejectsUnknown(t *testing.T) {
	_, err := ParseSchedule("rotating_ZZ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPicker_AdvancesAfterLimitRounds(t *testing.T) {
	p, err := NewPicker(ScheduleRotatingXY, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	first := p.NextDirection(2)
	second := p.NextDirection(2)
	third := p.NextDirection(2)

	assert.Equal(t, first, second, "direction must stay fixed until the limit is reached")
	assert.NotEqual(t, second, third, "direction must advance once the round counter reaches limit")
}

func TestPicker_RotatingXYMatchesLiteralTable(t *testing.T) {
	p, err := NewPicker(ScheduleRotatingXY, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	want := []geometry.SweepDir{
		geometry.DirXYZ, geometry.DirYZ, geometry.DirNXY, geometry.DirXZ,
		geometry.DirXY, geometry.DirNXZ, geometry.DirNXYZ, geometry.DirNYZ,
	}
	for i, w := range want {
		got := p.NextDirection(1)
		assert.Equal(t, w, got, "direction at slot %d", i)
	}
}

func TestPicker_RandomScheduleStaysWithinEightDirections(t *testing.T) {
	p, err := NewPicker(ScheduleRandom, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	seen := make(map[geometry.SweepDir]struct{})
	for i := 0; i < 200; i++ {
		seen[p.NextDirection(0)] = struct{}{}
	}
	for dir := range seen {
		found := false
		for _, d := range geometry.AllSweepDirs {
			if d == dir {
				found = true
				break
			}
		}
		assert.True(t, found, "direction %q must be one of the eight sweep directions", dir)
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]geometry.Variant{
		"rhombic_toric":      geometry.RhombicToric,
		"rhombic_boundaries": geometry.RhombicBounded,
		"cubic_boundaries":   geometry.CubicBounded,
	}
	for name, want := range cases {
		got, err := ParseVariant(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseVariant("cubic_toric")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
