package experiment

import (
	"math/rand"

	"github.com/katalvlaran/sweepdecoder/geometry"
)

// Schedule names one of the seven sweep-direction orderings the driver can
// cycle through. Each non-random schedule is a fixed permutation of the
// eight sweep directions; Random draws the next direction uniformly.
type Schedule string

const (
	ScheduleRotatingXY    Schedule = "rotating_XY"
	ScheduleRotatingXZ    Schedule = "rotating_XZ"
	ScheduleRotatingYZ    Schedule = "rotating_YZ"
	ScheduleAlternatingXY Schedule = "alternating_XY"
	ScheduleAlternatingXZ Schedule = "alternating_XZ"
	ScheduleAlternatingYZ Schedule = "alternating_YZ"
	ScheduleRandom        Schedule = "random"
)

// scheduleDirections tabulates the fixed 8-direction orderings, ported
// literally from the original driver's per-schedule sweepDirections
// initializers.
var scheduleDirections = map[Schedule][8]geometry.SweepDir{
	ScheduleRotatingXZ: {
		geometry.DirXYZ, geometry.DirXY, geometry.DirNXZ, geometry.DirYZ,
		geometry.DirXZ, geometry.DirNYZ, geometry.DirNXYZ, geometry.DirNXY,
	},
	ScheduleAlternatingXZ: {
		geometry.DirXYZ, geometry.DirNXZ, geometry.DirNYZ, geometry.DirNXY,
		geometry.DirNXYZ, geometry.DirXZ, geometry.DirYZ, geometry.DirXY,
	},
	ScheduleRotatingYZ: {
		geometry.DirXYZ, geometry.DirXY, geometry.DirNYZ, geometry.DirXZ,
		geometry.DirYZ, geometry.DirNXZ, geometry.DirNXYZ, geometry.DirNXY,
	},
	ScheduleAlternatingYZ: {
		geometry.DirXYZ, geometry.DirNYZ, geometry.DirNXZ, geometry.DirNXY,
		geometry.DirNXYZ, geometry.DirYZ, geometry.DirXZ, geometry.DirXY,
	},
	ScheduleRotatingXY: {
		geometry.DirXYZ, geometry.DirYZ, geometry.DirNXY, geometry.DirXZ,
		geometry.DirXY, geometry.DirNXZ, geometry.DirNXYZ, geometry.DirNYZ,
	},
	ScheduleAlternatingXY: {
		geometry.DirXYZ, geometry.DirNXY, geometry.DirNXZ, geometry.DirNYZ,
		geometry.DirNXYZ, geometry.DirXY, geometry.DirXZ, geometry.DirYZ,
	},
}

// ParseSchedule validates a schedule name from the CLI, matching the
// original driver's if/else-if chain that throws on anything else.
func ParseSchedule(s string) (Schedule, error) {
	switch Schedule(s) {
	case ScheduleRotatingXY, ScheduleRotatingXZ, ScheduleRotatingYZ,
		ScheduleAlternatingXY, ScheduleAlternatingXZ, ScheduleAlternatingYZ,
		ScheduleRandom:
		return Schedule(s), nil
	default:
		return "", experimentErrorf("ParseSchedule", "invalid sweep schedule", ErrInvalidArgument)
	}
}

// Picker tracks the current sweep direction and the round counter that
// advances it, reproducing runBoundaries' sweepIndex/sweepCount pair for
// both the main-round phase (limit = sweepLimit) and the timeout phase
// (limit = L).
type Picker struct {
	random bool
	dirs   [8]geometry.SweepDir
	rng    *rand.Rand
	index  int
	count  int
}

// NewPicker builds a Picker for schedule, seeding a random starting
// direction when schedule is Random.
func NewPicker(schedule Schedule, rng *rand.Rand) (*Picker, error) {
	if schedule == ScheduleRandom {
		return &Picker{random: true, dirs: allDirsArray(), rng: rng, index: rng.Intn(8)}, nil
	}
	dirs, ok := scheduleDirections[schedule]
	if !ok {
		return nil, experimentErrorf("NewPicker", "invalid sweep schedule", ErrInvalidArgument)
	}
	return &Picker{dirs: dirs, rng: rng}, nil
}

func allDirsArray() [8]geometry.SweepDir {
	var a [8]geometry.SweepDir
	copy(a[:], geometry.AllSweepDirs)
	return a
}

// NextDirection returns the direction to sweep this round, advancing to the
// next slot (or, for Random, redrawing) once the round counter reaches
// limit. Call once per round with the phase's own limit.
func (p *Picker) NextDirection(limit int) geometry.SweepDir {
	if p.count == limit {
		if p.random {
			p.index = p.rng.Intn(8)
		} else {
			p.index = (p.index + 1) % 8
		}
		p.count = 0
	}
	dir := p.dirs[p.index]
	p.count++
	return dir
}
