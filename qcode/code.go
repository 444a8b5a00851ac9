package qcode

import (
	"math/rand"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/rngx"
)

// Code is the mutable per-shot state of the decoder: which faces carry a
// data-qubit X error, the measured syndrome over edges, and the sweep
// kernel's flip scratch buffer. Geometry is shared, read-only topology;
// everything in Code changes from round to round.
type Code struct {
	Geometry *geometry.Geometry
	RNG      *rand.Rand

	P, Q float64 // data / measurement error probabilities, each in [0,1]

	DataModel DataErrorModel

	Error    map[int]struct{} // face ids currently carrying a data error
	Syndrome []int8           // indexed by edge id
	FlipBits []int8           // indexed by face id, sweep scratch buffer
}

// New builds a Code over the given geometry with the given error
// probabilities and fault model, seeded from rng. rng is owned by the
// caller (see rngx.Stream): Code never reseeds or reads OS entropy itself.
func New(g *geometry.Geometry, p, q float64, model DataErrorModel, rng *rand.Rand) (*Code, error) {
	if p < 0 || p > 1 {
		return nil, qcodeErrorf("New", "data error probability must be in [0,1]", ErrInvalidArgument)
	}
	if q < 0 || q > 1 {
		return nil, qcodeErrorf("New", "measurement error probability must be in [0,1]", ErrInvalidArgument)
	}
	if model == nil {
		model = IndependentModel{}
	}
	return &Code{
		Geometry:  g,
		RNG:       rng,
		P:         p,
		Q:         q,
		DataModel: model,
		Error:     make(map[int]struct{}),
		Syndrome:  make([]int8, g.NumEdges),
		FlipBits:  make([]int8, len(g.FaceToEdges)),
	}, nil
}

// SetError replaces the current error set wholesale — the test-only entry
// point spec.md names explicitly, ported from Code::setError.
func (c *Code) SetError(faces []int) {
	c.Error = make(map[int]struct{}, len(faces))
	for _, f := range faces {
		c.Error[f] = struct{}{}
	}
}

// ClearSyndrome zeroes the syndrome vector.
func (c *Code) ClearSyndrome() {
	for i := range c.Syndrome {
		c.Syndrome[i] = 0
	}
}

// ClearFlipBits zeroes the sweep scratch buffer.
func (c *Code) ClearFlipBits() {
	for i := range c.FlipBits {
		c.FlipBits[i] = 0
	}
}

// CalculateSyndrome recomputes the syndrome from scratch as the parity, at
// each edge, of how many current-error faces touch it. Bounded variants
// only ever toggle edges carrying a defined stabilizer; ported from
// Code::calculateSyndrome.
func (c *Code) CalculateSyndrome() {
	c.ClearSyndrome()
	for face := range c.Error {
		for _, edge := range c.Geometry.FaceToEdges[face] {
			if !c.Geometry.IsValidSyndromeIndex(edge) {
				continue
			}
			c.Syndrome[edge] = (c.Syndrome[edge] + 1) % 2
		}
	}
}

// GenerateMeasError flips each defined-stabilizer syndrome bit independently
// with probability Q, modelling measurement error at readout. Ported from
// Code::generateMeasError.
func (c *Code) GenerateMeasError() {
	for i := range c.Syndrome {
		if !c.Geometry.IsValidSyndromeIndex(i) {
			continue
		}
		if rngx.UnitInterval(c.RNG) <= c.Q {
			c.Syndrome[i] = (c.Syndrome[i] + 1) % 2
		}
	}
}

// GenerateDataError applies the active DataErrorModel once.
func (c *Code) GenerateDataError() {
	c.DataModel.Apply(c)
}

// CheckCorrection reports whether the current error, restricted to the
// logical representative face sets, has even total parity on every
// populated logical operator — i.e. whether the correction succeeded
// without a logical failure. Ported from Code::checkCorrection.
func (c *Code) CheckCorrection() bool {
	if !c.logicalParityEven(c.Geometry.LogicalZ1) {
		return false
	}
	if c.Geometry.Variant.IsToric() {
		if !c.logicalParityEven(c.Geometry.LogicalZ2) {
			return false
		}
		if !c.logicalParityEven(c.Geometry.LogicalZ3) {
			return false
		}
	}
	return true
}

func (c *Code) logicalParityEven(faces []int) bool {
	parity := 0
	for _, f := range faces {
		if _, ok := c.Error[f]; ok {
			parity = (parity + 1) % 2
		}
	}
	return parity == 0
}

// toggleFace flips face membership in the error set, the set-theoretic
// analogue of the original's std::set insert/erase toggle.
func toggleFace(errorSet map[int]struct{}, face int) {
	if _, ok := errorSet[face]; ok {
		delete(errorSet, face)
	} else {
		errorSet[face] = struct{}{}
	}
}

// CommitFlipBits XORs the sweep scratch buffer into the error set, face by
// face, and clears the buffer. Called once at the end of every sweep step.
func (c *Code) CommitFlipBits() {
	for face, bit := range c.FlipBits {
		if bit != 0 {
			toggleFace(c.Error, face)
		}
	}
	c.ClearFlipBits()
}

// LocalFlip toggles the sweep-scratch bit of the face spanning the given
// four vertices. Ported from Code::localFlip.
func (c *Code) LocalFlip(vertices [4]int) error {
	faceIndex, err := c.Geometry.FindFace(vertices)
	if err != nil {
		return err
	}
	c.FlipBits[faceIndex] = (c.FlipBits[faceIndex] + 1) % 2
	return nil
}
