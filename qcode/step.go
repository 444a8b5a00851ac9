package qcode

import "github.com/katalvlaran/sweepdecoder/geometry"

// Step runs one synchronous sweep-rule CA pass in the given direction over
// every vertex in Geometry.SweepIndices, accumulating face flips in
// FlipBits, and commits them into Error via CommitFlipBits once the pass
// is complete. Ported from {Rhombic,Cubic}Code::sweep.
func (c *Code) Step(dir geometry.SweepDir, greedy bool) error {
	c.ClearFlipBits()
	if c.Geometry.Variant.IsRhombic() {
		if err := c.stepRhombic(dir, greedy); err != nil {
			return err
		}
	} else {
		if err := c.stepCubic(dir, greedy); err != nil {
			return err
		}
	}
	c.CommitFlipBits()
	return nil
}

func (c *Code) stepRhombic(dir geometry.SweepDir, greedy bool) error {
	triple := rhombicEdgeTriple[dir]
	bounded := !c.Geometry.Variant.IsToric()
	fullVertexParity := 0
	if bounded {
		fullVertexParity = 1
	}
	for _, v := range c.Geometry.SweepIndices {
		if !greedy && !c.checkExtremalVertex(v, dir) {
			continue
		}
		sweepEdges, err := c.findSweepEdgesRhombic(v, dir)
		if err != nil {
			return err
		}
		if len(sweepEdges) > 4 {
			return qcodeErrorf("Step", "more than four up-edges found for a rhombic lattice vertex", ErrInvariantViolation)
		}
		if len(sweepEdges) == 0 {
			continue
		}
		coord, err := c.Geometry.IndexToCoordinate(v)
		if err != nil {
			return err
		}
		if len(sweepEdges) == 1 && (!bounded || coord.W == 0) {
			continue
		}
		if coord.W == 0 {
			if (coord.X+coord.Y+coord.Z)%2 != fullVertexParity {
				return qcodeErrorf("Step", "vertex not present in lattice has up-edges", ErrInvariantViolation)
			}
			if err := c.sweepFullVertex(v, sweepEdges, dir, triple); err != nil {
				return err
			}
		} else if bounded {
			if err := c.sweepHalfVertexBoundary(v, sweepEdges, dir, triple); err != nil {
				return err
			}
		} else {
			if err := c.sweepHalfVertex(v, sweepEdges, triple); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Code) stepCubic(dir geometry.SweepDir, greedy bool) error {
	triple := cubicEdgeTriple[dir]
	for _, v := range c.Geometry.SweepIndices {
		if !greedy && !c.checkExtremalVertex(v, dir) {
			continue
		}
		sweepEdges, err := c.findSweepEdgesCubic(v, dir)
		if err != nil {
			return err
		}
		if len(sweepEdges) > 3 {
			return qcodeErrorf("Step", "more than three up-edges found for a cubic lattice vertex", ErrInvariantViolation)
		}
		if len(sweepEdges) < 2 {
			continue
		}
		if err := c.cellularAutomatonStep(v, sweepEdges, triple); err != nil {
			return err
		}
	}
	return nil
}
