package qcode

import (
	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/rngx"
)

// cubicAxisDir names one of the six signed coordinate-axis directions a
// cubic sweep edge can point along. Distinct from geometry.SweepDir, which
// names the eight sweep directions themselves.
type cubicAxisDir string

const (
	cubicX  cubicAxisDir = "x"
	cubicY  cubicAxisDir = "y"
	cubicZ  cubicAxisDir = "z"
	cubicNX cubicAxisDir = "-x"
	cubicNY cubicAxisDir = "-y"
	cubicNZ cubicAxisDir = "-z"
)

var allCubicAxisDirs = []cubicAxisDir{cubicX, cubicY, cubicZ, cubicNX, cubicNY, cubicNZ}

func cubicAxisSign(d cubicAxisDir) (geometry.Axis, int) {
	switch d {
	case cubicX:
		return geometry.AxisX, 1
	case cubicY:
		return geometry.AxisY, 1
	case cubicZ:
		return geometry.AxisZ, 1
	case cubicNX:
		return geometry.AxisX, -1
	case cubicNY:
		return geometry.AxisY, -1
	case cubicNZ:
		return geometry.AxisZ, -1
	}
	return geometry.AxisX, 1
}

// cubicEdgeTriple lists, for each sweep direction, the three signed-axis
// directions its own up-edges are classified against. Ported from the
// edgeDirections table built inline in CubicCode::sweep.
var cubicEdgeTriple = map[geometry.SweepDir][3]cubicAxisDir{
	geometry.DirXYZ:  {cubicX, cubicY, cubicZ},
	geometry.DirXY:   {cubicX, cubicY, cubicNZ},
	geometry.DirXZ:   {cubicX, cubicNY, cubicZ},
	geometry.DirYZ:   {cubicNX, cubicY, cubicZ},
	geometry.DirNXYZ: {cubicNX, cubicNY, cubicNZ},
	geometry.DirNXY:  {cubicNX, cubicNY, cubicZ},
	geometry.DirNXZ:  {cubicNX, cubicY, cubicNZ},
	geometry.DirNYZ:  {cubicX, cubicNY, cubicNZ},
}

func (c *Code) faceVerticesCubic(v int, dir0, dir1, dir2 cubicAxisDir) ([4]int, error) {
	if dir1 != dir2 {
		return [4]int{}, qcodeErrorf("faceVertices", "second and third directions must match", ErrInvalidArgument)
	}
	a0, s0 := cubicAxisSign(dir0)
	a1, s1 := cubicAxisSign(dir1)
	n0, err := c.Geometry.Neighbour(v, a0, s0)
	if err != nil {
		return [4]int{}, err
	}
	n1, err := c.Geometry.Neighbour(v, a1, s1)
	if err != nil {
		return [4]int{}, err
	}
	n2, err := c.Geometry.Neighbour(n0, a1, s1)
	if err != nil {
		return [4]int{}, err
	}
	return [4]int{v, n0, n1, n2}, nil
}

func (c *Code) tryLocalFlipCubic(v int, dir0, dir1, dir2 cubicAxisDir) error {
	verts, err := c.faceVerticesCubic(v, dir0, dir1, dir2)
	if err != nil {
		if isPrunableGeometryErr(err) {
			return nil
		}
		return err
	}
	if err := c.LocalFlip(verts); err != nil && !isPrunableGeometryErr(err) {
		return err
	}
	return nil
}

// findSweepEdgesCubic resolves each syndrome-carrying up-edge at v into its
// signed-axis direction label, ported from CubicCode::findSweepEdges.
func (c *Code) findSweepEdgesCubic(v int, dir geometry.SweepDir) ([]cubicAxisDir, error) {
	var result []cubicAxisDir
	for _, e := range c.Geometry.UpEdges[dir][v] {
		if c.Syndrome[e] != 1 {
			continue
		}
		label, ok, err := c.resolveCubicEdgeLabel(v, e)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, qcodeErrorf("findSweepEdges", "edge index does not correspond to a valid edge", ErrInvariantViolation)
		}
		result = append(result, label)
	}
	return result, nil
}

func (c *Code) resolveCubicEdgeLabel(v, edge int) (cubicAxisDir, bool, error) {
	for _, d := range allCubicAxisDirs {
		axis, sign := cubicAxisSign(d)
		candidate, err := c.Geometry.EdgeIndex(v, axis, sign)
		if err != nil {
			if isPrunableGeometryErr(err) {
				continue
			}
			return "", false, err
		}
		if candidate == edge {
			return d, true, nil
		}
	}
	return "", false, nil
}

// cellularAutomatonStep applies the cubic sweep rule at v: with three
// up-edges, one is dropped at random; the remaining pair always matches
// exactly one of the three axis pairings and flips exactly one face.
// Ported from CubicCode::cellularAutomatonStep.
func (c *Code) cellularAutomatonStep(v int, sweepEdges []cubicAxisDir, triple [3]cubicAxisDir) error {
	edge0, edge1, edge2 := triple[0], triple[1], triple[2]
	remaining := sweepEdges
	if len(remaining) == 3 {
		remaining = removeAtCubic(remaining, rngx.IntnInclusive(c.RNG, 2))
	}
	switch {
	case hasPairCubic(remaining, edge0, edge2):
		return c.tryLocalFlipCubic(v, edge0, edge2, edge2)
	case hasPairCubic(remaining, edge0, edge1):
		return c.tryLocalFlipCubic(v, edge0, edge1, edge1)
	case hasPairCubic(remaining, edge1, edge2):
		return c.tryLocalFlipCubic(v, edge2, edge1, edge1)
	default:
		return qcodeErrorf("cellularAutomatonStep", "invalid up-edges", ErrInvariantViolation)
	}
}

func removeAtCubic(s []cubicAxisDir, i int) []cubicAxisDir {
	out := make([]cubicAxisDir, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func hasPairCubic(s []cubicAxisDir, a, b cubicAxisDir) bool {
	if len(s) != 2 {
		return false
	}
	return (s[0] == a && s[1] == b) || (s[0] == b && s[1] == a)
}
