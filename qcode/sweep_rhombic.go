package qcode

import (
	"errors"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/rngx"
)

// rhombicEdgeTriple lists, for each sweep direction, the three other
// direction labels a full vertex's remaining up-edges are classified
// against. Ported from the edgeDirections table built inline in
// RhombicCode::sweep.
var rhombicEdgeTriple = map[geometry.SweepDir][3]geometry.SweepDir{
	geometry.DirXYZ:  {geometry.DirXY, geometry.DirYZ, geometry.DirXZ},
	geometry.DirXY:   {geometry.DirXYZ, geometry.DirNXZ, geometry.DirNYZ},
	geometry.DirXZ:   {geometry.DirXYZ, geometry.DirNXY, geometry.DirNYZ},
	geometry.DirYZ:   {geometry.DirXYZ, geometry.DirNXY, geometry.DirNXZ},
	geometry.DirNXYZ: {geometry.DirNXY, geometry.DirNYZ, geometry.DirNXZ},
	geometry.DirNXY:  {geometry.DirNXYZ, geometry.DirXZ, geometry.DirYZ},
	geometry.DirNXZ:  {geometry.DirNXYZ, geometry.DirXY, geometry.DirYZ},
	geometry.DirNYZ:  {geometry.DirNXYZ, geometry.DirXY, geometry.DirXZ},
}

// rhombicAxisSign resolves a sweep-direction label to the (axis, sign)
// Neighbour/EdgeIndex pair it names.
func rhombicAxisSign(dir geometry.SweepDir) (geometry.Axis, int) {
	switch dir {
	case geometry.DirXYZ:
		return geometry.AxisXYZ, 1
	case geometry.DirXY:
		return geometry.AxisXY, 1
	case geometry.DirXZ:
		return geometry.AxisXZ, 1
	case geometry.DirYZ:
		return geometry.AxisYZ, 1
	case geometry.DirNXYZ:
		return geometry.AxisXYZ, -1
	case geometry.DirNXY:
		return geometry.AxisXY, -1
	case geometry.DirNXZ:
		return geometry.AxisXZ, -1
	case geometry.DirNYZ:
		return geometry.AxisYZ, -1
	}
	return geometry.AxisXYZ, 1
}

// faceVerticesRhombic resolves the rhombic three-direction face recipe
// {dir0, dir1, dir1} (the original always repeats the same label as its
// second and third argument) into the four vertices of the face that dir0
// and dir1 jointly bound, in the order {v, v+dir0, v+dir1, v+dir0+dir1}
// (unsorted; FindFace sorts them), ported from Code::faceVertices.
func (c *Code) faceVerticesRhombic(v int, dir0, dir1, dir2 geometry.SweepDir) ([4]int, error) {
	if dir1 != dir2 {
		return [4]int{}, qcodeErrorf("faceVertices", "second and third directions must match", ErrInvalidArgument)
	}
	a0, s0 := rhombicAxisSign(dir0)
	a1, s1 := rhombicAxisSign(dir1)
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
	verts := [4]int{v, n0, n1, n2}
	return verts, nil
}

func (c *Code) tryLocalFlipRhombic(v int, dir0, dir1, dir2 geometry.SweepDir) error {
	verts, err := c.faceVerticesRhombic(v, dir0, dir1, dir2)
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

// checkExtremalVertex reports whether every syndrome-carrying edge incident
// to v is also an up-edge for dir, and at least one such edge exists.
// Ported from Code::checkExtremalVertex — shared by the rhombic and cubic
// sweep kernels.
func (c *Code) checkExtremalVertex(v int, dir geometry.SweepDir) bool {
	upSet := make(map[int]struct{}, len(c.Geometry.UpEdges[dir][v]))
	for _, e := range c.Geometry.UpEdges[dir][v] {
		upSet[e] = struct{}{}
	}
	found := false
	for _, e := range c.Geometry.VertexToEdges[v] {
		if c.Syndrome[e] == 1 {
			found = true
			if _, ok := upSet[e]; !ok {
				return false
			}
		}
	}
	return found
}

// findSweepEdgesRhombic resolves each syndrome-carrying up-edge at v to its
// direction label, ported from RhombicCode::findSweepEdges.
func (c *Code) findSweepEdgesRhombic(v int, dir geometry.SweepDir) ([]geometry.SweepDir, error) {
	var result []geometry.SweepDir
	for _, e := range c.Geometry.UpEdges[dir][v] {
		if c.Syndrome[e] != 1 {
			continue
		}
		label, ok, err := c.resolveRhombicEdgeLabel(v, e)
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

func (c *Code) resolveRhombicEdgeLabel(v, edge int) (geometry.SweepDir, bool, error) {
	for _, dir := range geometry.AllSweepDirs {
		axis, sign := rhombicAxisSign(dir)
		candidate, err := c.Geometry.EdgeIndex(v, axis, sign)
		if err != nil {
			if isPrunableGeometryErr(err) {
				continue
			}
			return "", false, err
		}
		if candidate == edge {
			return dir, true, nil
		}
	}
	return "", false, nil
}

// sweepFullVertex applies the sweep rule at a w=0 (full) vertex: when all
// four up-edges fire, every one of the three candidate faces flips; when
// the firing sweepEdges set overlaps edgeDirections, the rule reduces to a
// one- or two-face flip with a coin-flip tiebreak, ported from
// RhombicCode::sweepFullVertex.
func (c *Code) sweepFullVertex(v int, sweepEdges []geometry.SweepDir, sweepDirection geometry.SweepDir, triple [3]geometry.SweepDir) error {
	edge0, edge1, edge2 := triple[0], triple[1], triple[2]

	sweepDirIdx := indexOfDir(sweepEdges, sweepDirection)

	if len(sweepEdges) == 4 {
		for _, e := range []geometry.SweepDir{edge0, edge1, edge2} {
			if err := c.tryLocalFlipRhombic(v, sweepDirection, e, e); err != nil {
				return err
			}
		}
		return nil
	}

	if sweepDirIdx < len(sweepEdges) {
		remaining := removeAt(sweepEdges, sweepDirIdx)
		if len(remaining) == 2 {
			remaining = removeAt(remaining, rngx.IntnInclusive(c.RNG, 1))
		}
		switch remaining[0] {
		case edge0:
			return c.tryLocalFlipRhombic(v, sweepDirection, edge0, edge0)
		case edge2:
			return c.tryLocalFlipRhombic(v, sweepDirection, edge2, edge2)
		case edge1:
			return c.tryLocalFlipRhombic(v, sweepDirection, edge1, edge1)
		default:
			return qcodeErrorf("sweepFullVertex", "invalid up-edges", ErrInvariantViolation)
		}
	}

	remaining := sweepEdges
	if len(remaining) == 3 {
		remaining = removeAt(remaining, rngx.IntnInclusive(c.RNG, 2))
	}
	switch {
	case hasPair(remaining, edge0, edge2):
		if err := c.tryLocalFlipRhombic(v, sweepDirection, edge0, edge0); err != nil {
			return err
		}
		return c.tryLocalFlipRhombic(v, sweepDirection, edge2, edge2)
	case hasPair(remaining, edge0, edge1):
		if err := c.tryLocalFlipRhombic(v, sweepDirection, edge0, edge0); err != nil {
			return err
		}
		return c.tryLocalFlipRhombic(v, sweepDirection, edge1, edge1)
	case hasPair(remaining, edge1, edge2):
		if err := c.tryLocalFlipRhombic(v, sweepDirection, edge1, edge1); err != nil {
			return err
		}
		return c.tryLocalFlipRhombic(v, sweepDirection, edge2, edge2)
	default:
		return qcodeErrorf("sweepFullVertex", "invalid up-edges", ErrInvariantViolation)
	}
}

// sweepHalfVertex applies the sweep rule at a toric w=1 (half) vertex,
// ported from RhombicCode::sweepHalfVertex.
func (c *Code) sweepHalfVertex(v int, sweepEdges []geometry.SweepDir, triple [3]geometry.SweepDir) error {
	edge0, edge1, edge2 := triple[0], triple[1], triple[2]
	remaining := sweepEdges
	if len(remaining) == 3 {
		remaining = removeAt(remaining, rngx.IntnInclusive(c.RNG, 2))
	}
	switch {
	case hasPair(remaining, edge0, edge2):
		return c.tryLocalFlipRhombic(v, edge0, edge2, edge2)
	case hasPair(remaining, edge0, edge1):
		return c.tryLocalFlipRhombic(v, edge0, edge1, edge1)
	case hasPair(remaining, edge1, edge2):
		return c.tryLocalFlipRhombic(v, edge2, edge1, edge1)
	default:
		return qcodeErrorf("sweepHalfVertex", "invalid up-edges", ErrInvariantViolation)
	}
}

// sweepHalfVertexBoundary applies the sweep rule at a bounded w=1 vertex.
// The single-up-edge case only fires at four specific (y,z) boundary
// corners and only for specific (arrived-edge, sweepDirection) pairs;
// every other case defers to the toric half-vertex rule, ported from
// RhombicCode::sweepHalfVertexBoundary.
func (c *Code) sweepHalfVertexBoundary(v int, sweepEdges []geometry.SweepDir, sweepDirection geometry.SweepDir, triple [3]geometry.SweepDir) error {
	if len(sweepEdges) != 1 {
		return c.sweepHalfVertex(v, sweepEdges, triple)
	}
	coord, err := c.Geometry.IndexToCoordinate(v)
	if err != nil {
		return err
	}
	l := c.Geometry.L
	edge := sweepEdges[0]

	switch {
	case coord.Y == 0 && coord.Z == 1:
		switch {
		case edge == geometry.DirXY && (sweepDirection == geometry.DirNYZ || sweepDirection == geometry.DirNXZ):
			return c.tryLocalFlipRhombic(v, geometry.DirXY, geometry.DirNXYZ, geometry.DirNXYZ)
		case edge == geometry.DirNXZ && (sweepDirection == geometry.DirXY || sweepDirection == geometry.DirNXYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirNXZ, geometry.DirNYZ, geometry.DirNYZ)
		}
	case coord.Y == 0 && coord.Z == l-2:
		switch {
		case edge == geometry.DirYZ && (sweepDirection == geometry.DirNXY || sweepDirection == geometry.DirXYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirYZ, geometry.DirXZ, geometry.DirXZ)
		case edge == geometry.DirXYZ && (sweepDirection == geometry.DirXZ || sweepDirection == geometry.DirYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirXYZ, geometry.DirNXY, geometry.DirNXY)
		}
	case coord.Y == l-2 && coord.Z == 1:
		switch {
		case edge == geometry.DirNXYZ && (sweepDirection == geometry.DirNXZ || sweepDirection == geometry.DirNYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirNXYZ, geometry.DirXY, geometry.DirXY)
		case edge == geometry.DirNYZ && (sweepDirection == geometry.DirXY || sweepDirection == geometry.DirNXYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirNXZ, geometry.DirNYZ, geometry.DirNYZ)
		}
	case coord.Y == l-2 && coord.Z == l-2:
		switch {
		case edge == geometry.DirXZ && (sweepDirection == geometry.DirNXY || sweepDirection == geometry.DirXYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirXZ, geometry.DirYZ, geometry.DirYZ)
		case edge == geometry.DirNXY && (sweepDirection == geometry.DirXZ || sweepDirection == geometry.DirYZ):
			return c.tryLocalFlipRhombic(v, geometry.DirXYZ, geometry.DirNXY, geometry.DirNXY)
		}
	}
	return nil
}

func isPrunableGeometryErr(err error) bool {
	return errors.Is(err, geometry.ErrOutOfLattice) || errors.Is(err, geometry.ErrInvalidArgument) || errors.Is(err, geometry.ErrNotAFace)
}

func indexOfDir(s []geometry.SweepDir, d geometry.SweepDir) int {
	for i, v := range s {
		if v == d {
			return i
		}
	}
	return len(s)
}

func removeAt(s []geometry.SweepDir, i int) []geometry.SweepDir {
	out := make([]geometry.SweepDir, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func hasPair(s []geometry.SweepDir, a, b geometry.SweepDir) bool {
	if len(s) != 2 {
		return false
	}
	return (s[0] == a && s[1] == b) || (s[0] == b && s[1] == a)
}
