package geometry

// This file implements the rhombic (body-centred-cubic) family: two
// interpenetrating sublattices w∈{0,1}, w=0 "full" vertices of degree 8 and
// w=1 "half" vertices of degree 4. Both the bounded (open-boundary) and
// toric (periodic) variants are ported here, since they share the same
// neighbour-shift shape and differ only in modular wraparound vs an
// explicit out-of-lattice check.

func (g *Geometry) rhombicAxisValid(axis Axis) bool {
	return axis == AxisXY || axis == AxisXZ || axis == AxisYZ || axis == AxisXYZ
}

// rhombicBoundedNeighbour implements the two-sublattice coordinate shift:
// from a w=1 half vertex one steps toward a w=0 full vertex (and vice
// versa), with the shift per axis depending on sign in a non-trivial way
// (only one of the three coordinates moves in the "negative" convention,
// chosen so +1 and -1 neighbours along the same axis are always a single
// lattice step apart). Out-of-range results fail with ErrOutOfLattice.
func (g *Geometry) rhombicBoundedNeighbour(v int, axis Axis, sign int) (int, error) {
	if !g.rhombicAxisValid(axis) {
		return 0, geometryErrorf("Neighbour", "rhombic axis must be one of xy, xz, yz, xyz", ErrInvalidArgument)
	}
	c, err := g.IndexToCoordinate(v)
	if err != nil {
		return 0, err
	}
	if c.W == 1 {
		switch axis {
		case AxisXY:
			c.X += boolToInt(sign > 0)
			c.Y += boolToInt(sign > 0)
			c.Z += boolToInt(sign < 0)
		case AxisXZ:
			c.X += boolToInt(sign > 0)
			c.Z += boolToInt(sign > 0)
			c.Y += boolToInt(sign < 0)
		case AxisYZ:
			c.Y += boolToInt(sign > 0)
			c.Z += boolToInt(sign > 0)
			c.X += boolToInt(sign < 0)
		case AxisXYZ:
			c.X += boolToInt(sign > 0)
			c.Y += boolToInt(sign > 0)
			c.Z += boolToInt(sign > 0)
		}
		c.W = 0
	} else {
		switch axis {
		case AxisXY:
			c.X -= boolToInt(sign < 0)
			c.Y -= boolToInt(sign < 0)
			c.Z -= boolToInt(sign > 0)
		case AxisXZ:
			c.X -= boolToInt(sign < 0)
			c.Z -= boolToInt(sign < 0)
			c.Y -= boolToInt(sign > 0)
		case AxisYZ:
			c.Y -= boolToInt(sign < 0)
			c.Z -= boolToInt(sign < 0)
			c.X -= boolToInt(sign > 0)
		case AxisXYZ:
			c.X -= boolToInt(sign < 0)
			c.Y -= boolToInt(sign < 0)
			c.Z -= boolToInt(sign < 0)
		}
		c.W = 1
	}
	if c.X < 0 || c.X >= g.L || c.Y < 0 || c.Y >= g.L || c.Z < 0 || c.Z >= g.L {
		return 0, geometryErrorf("Neighbour", "result leaves bounded lattice", ErrOutOfLattice)
	}
	return g.CoordinateToIndex(c)
}

// rhombicToricNeighbour is the periodic counterpart: the same coordinate
// shift, each component taken modulo L, so there is never an
// ErrOutOfLattice for this variant.
func (g *Geometry) rhombicToricNeighbour(v int, axis Axis, sign int) (int, error) {
	if !g.rhombicAxisValid(axis) {
		return 0, geometryErrorf("Neighbour", "rhombic axis must be one of xy, xz, yz, xyz", ErrInvalidArgument)
	}
	c, err := g.IndexToCoordinate(v)
	if err != nil {
		return 0, err
	}
	l := g.L
	mod := func(x int) int { return ((x % l) + l) % l }
	if c.W == 1 {
		switch axis {
		case AxisXY:
			c.X = mod(c.X + boolToInt(sign > 0))
			c.Y = mod(c.Y + boolToInt(sign > 0))
			c.Z = mod(c.Z + boolToInt(sign < 0))
		case AxisXZ:
			c.X = mod(c.X + boolToInt(sign > 0))
			c.Z = mod(c.Z + boolToInt(sign > 0))
			c.Y = mod(c.Y + boolToInt(sign < 0))
		case AxisYZ:
			c.Y = mod(c.Y + boolToInt(sign > 0))
			c.Z = mod(c.Z + boolToInt(sign > 0))
			c.X = mod(c.X + boolToInt(sign < 0))
		case AxisXYZ:
			c.X = mod(c.X + boolToInt(sign > 0))
			c.Y = mod(c.Y + boolToInt(sign > 0))
			c.Z = mod(c.Z + boolToInt(sign > 0))
		}
		c.W = 0
	} else {
		switch axis {
		case AxisXY:
			c.X = mod(c.X - boolToInt(sign < 0))
			c.Y = mod(c.Y - boolToInt(sign < 0))
			c.Z = mod(c.Z - boolToInt(sign > 0))
		case AxisXZ:
			c.X = mod(c.X - boolToInt(sign < 0))
			c.Z = mod(c.Z - boolToInt(sign < 0))
			c.Y = mod(c.Y - boolToInt(sign > 0))
		case AxisYZ:
			c.Y = mod(c.Y - boolToInt(sign < 0))
			c.Z = mod(c.Z - boolToInt(sign < 0))
			c.X = mod(c.X - boolToInt(sign > 0))
		case AxisXYZ:
			c.X = mod(c.X - boolToInt(sign < 0))
			c.Y = mod(c.Y - boolToInt(sign < 0))
			c.Z = mod(c.Z - boolToInt(sign < 0))
		}
		c.W = 1
	}
	return g.CoordinateToIndex(c)
}

// createFacesRhombicBounded enumerates every face of the bounded rhombic
// lattice. Only w=0 (full) vertices with odd coordinate parity seed a
// face walk; the long case split below is keyed on z's parity and on
// whether x or y sits on a boundary, omitting any face that would step
// outside the lattice. This case split is ported directly from the
// original — it is the one part of the geometry genuinely irreducible to
// a shorter rule, per spec.md §2's line-share note.
func (g *Geometry) createFacesRhombicBounded() error {
	faceIndex := 0
	l := g.L
	add := func(v int, dirs [4]Axis, signs [4]int) error {
		if err := g.addFace(v, faceIndex, dirs, signs); err != nil {
			return err
		}
		faceIndex++
		return nil
	}
	for v := 0; v < l*l*l; v++ {
		c, err := g.IndexToCoordinate(v)
		if err != nil {
			return err
		}
		if (c.X+c.Y+c.Z)%2 != 1 {
			continue
		}
		if c.Z == 0 {
			continue
		}
		if c.Z%2 == 1 {
			switch {
			case c.Y == 0:
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
			case c.X == 0:
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if c.Z != l-1 {
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
						return err
					}
				}
				if c.Z != 1 {
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{1, -1, -1, 1}); err != nil {
						return err
					}
				}
			case c.X == l-1:
				if c.Y == l-1 {
					continue
				}
				if err := add(v, [4]Axis{AxisYZ, AxisXZ, AxisXZ, AxisYZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if c.Z != l-1 {
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{-1, 1, 1, -1}); err != nil {
						return err
					}
				}
				if c.Z != 1 {
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
						return err
					}
				}
			case c.Y == l-1:
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
			case c.X%2 == 0 && c.Y%2 == 0:
				if c.Z != l-1 {
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
						return err
					}
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{-1, 1, 1, -1}); err != nil {
						return err
					}
				}
				if c.Z != 1 {
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{1, -1, -1, 1}); err != nil {
						return err
					}
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
						return err
					}
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
			case c.X%2 == 1 && c.Y%2 == 1:
				if c.Z != l-1 {
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
						return err
					}
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{-1, 1, 1, -1}); err != nil {
						return err
					}
				}
				if c.Z != 1 {
					if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, [4]int{1, -1, -1, 1}); err != nil {
						return err
					}
					if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
						return err
					}
				}
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{-1, 1, 1, -1}); err != nil {
					return err
				}
			}
		} else {
			switch {
			case c.X == 0:
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
			case c.Y == 0:
				if c.X == l-1 {
					continue
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXY, AxisXZ, AxisXZ, AxisXY}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
			case c.X == l-1:
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
			case c.Y == l-1:
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXY, AxisXZ, AxisXZ, AxisXY}, [4]int{-1, 1, 1, -1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
			case c.X%2 == 0 && c.Y%2 == 1:
				if err := add(v, [4]Axis{AxisXZ, AxisXY, AxisXY, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisXY, AxisXY, AxisXZ}, [4]int{-1, 1, 1, -1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, [4]int{-1, 1, 1, -1}); err != nil {
					return err
				}
			case c.X%2 == 1 && c.Y%2 == 0:
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisXY, AxisXY, AxisXZ}, [4]int{-1, 1, 1, -1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXZ, AxisXY, AxisXY, AxisXZ}, [4]int{1, -1, -1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{1, 1, 1, 1}); err != nil {
					return err
				}
				if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, [4]int{-1, -1, -1, -1}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// createFacesRhombicToric enumerates every face of the toric rhombic
// lattice: every w=0 vertex with even coordinate parity emits six faces,
// three body-diagonal-rooted rhombi (signs all +1) and three
// face-diagonal-rooted rhombi (alternating signs), with periodic wraparound
// making every one of them well-defined everywhere.
func (g *Geometry) createFacesRhombicToric() error {
	faceIndex := 0
	l := g.L
	add := func(v int, dirs [4]Axis, signs [4]int) error {
		if err := g.addFace(v, faceIndex, dirs, signs); err != nil {
			return err
		}
		faceIndex++
		return nil
	}
	for v := 0; v < l*l*l; v++ {
		c, err := g.IndexToCoordinate(v)
		if err != nil {
			return err
		}
		if (c.X+c.Y+c.Z)%2 != 0 {
			continue
		}
		allPlus := [4]int{1, 1, 1, 1}
		alt := [4]int{1, -1, -1, 1}
		if err := add(v, [4]Axis{AxisXYZ, AxisYZ, AxisYZ, AxisXYZ}, allPlus); err != nil {
			return err
		}
		if err := add(v, [4]Axis{AxisXYZ, AxisXZ, AxisXZ, AxisXYZ}, allPlus); err != nil {
			return err
		}
		if err := add(v, [4]Axis{AxisXYZ, AxisXY, AxisXY, AxisXYZ}, allPlus); err != nil {
			return err
		}
		if err := add(v, [4]Axis{AxisXY, AxisXZ, AxisXZ, AxisXY}, alt); err != nil {
			return err
		}
		if err := add(v, [4]Axis{AxisXY, AxisYZ, AxisYZ, AxisXY}, alt); err != nil {
			return err
		}
		if err := add(v, [4]Axis{AxisXZ, AxisYZ, AxisYZ, AxisXZ}, alt); err != nil {
			return err
		}
	}
	return nil
}

// rhombicUpEdgeCandidate appends the edge leaving v along (axis, sign) to
// dst if that edge exists (pruning ErrOutOfLattice/ErrInvalidArgument
// candidates, the Go analogue of the original's try/catch filter).
func (g *Geometry) rhombicUpEdgeCandidate(dst *[]int, v int, axis Axis, sign int) error {
	e, err := g.EdgeIndex(v, axis, sign)
	if err != nil {
		if isPrunable(err) {
			return nil
		}
		return err
	}
	*dst = append(*dst, e)
	return nil
}

// createUpEdgesRhombicBounded builds the up-edge table for all eight sweep
// directions on the bounded rhombic lattice. Full (w=0, odd parity)
// vertices get a 4-candidate table per direction (pruned at the boundary);
// half (w=1, either parity) vertices get either a 3-candidate table (when
// their own coordinate parity makes 3 of their 4 edges "up" for d) or none
// (when only 1 of their edges is up, which never drives a sweep).
func (g *Geometry) createUpEdgesRhombicBounded() error {
	g.UpEdges = make(map[SweepDir][][]int, len(AllSweepDirs))
	for _, dir := range AllSweepDirs {
		table := make([][]int, g.NumVertices)
		for v := 0; v < g.NumVertices; v++ {
			c, err := g.IndexToCoordinate(v)
			if err != nil {
				return err
			}
			var edges []int
			if c.W == 0 {
				if (c.X+c.Y+c.Z)%2 == 1 {
					if err := g.fullVertexUpEdgesOddParity(&edges, v, dir); err != nil {
						return err
					}
				}
			} else {
				if (c.X+c.Y+c.Z)%2 == 1 {
					if err := g.halfVertexUpEdgesParity1(&edges, v, dir); err != nil {
						return err
					}
				} else {
					if err := g.halfVertexUpEdgesParity0(&edges, v, dir); err != nil {
						return err
					}
				}
			}
			table[v] = edges
		}
		g.UpEdges[dir] = table
	}
	return nil
}

// fullVertexUpEdgesOddParity is the bounded lattice's full-vertex (w=0, odd
// parity) up-edge table. toricFullVertexUpEdges holds the same candidate
// lists for the toric lattice's even-parity full vertices.
func (g *Geometry) fullVertexUpEdgesOddParity(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirXYZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, 1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirYZ:
		cands = []cand{{AxisYZ, 1}, {AxisXYZ, 1}, {AxisXY, -1}, {AxisXZ, -1}}
	case DirXZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, 1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirXY:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, 1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirNXYZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, -1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirNYZ:
		cands = []cand{{AxisXY, 1}, {AxisXZ, 1}, {AxisXYZ, -1}, {AxisYZ, -1}}
	case DirNXZ:
		cands = []cand{{AxisXY, 1}, {AxisYZ, 1}, {AxisXYZ, -1}, {AxisXZ, -1}}
	case DirNXY:
		cands = []cand{{AxisXZ, 1}, {AxisYZ, 1}, {AxisXYZ, -1}, {AxisXY, -1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

// halfVertexUpEdgesParity1 is a w=1 vertex whose own coordinate sum is odd.
// Four of its eight "directions" have only one up-edge (no sweep driven
// there, left empty); the other four get a 3-candidate table.
func (g *Geometry) halfVertexUpEdgesParity1(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirXY, DirXZ, DirYZ, DirNXYZ:
		return nil
	case DirXYZ:
		cands = []cand{{AxisXY, 1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirNXY:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirNXZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXY, 1}, {AxisYZ, 1}}
	case DirNYZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, 1}, {AxisXY, 1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

// halfVertexUpEdgesParity0 is a w=1 vertex whose own coordinate sum is
// even — the mirror image of halfVertexUpEdgesParity1 under direction
// reversal.
func (g *Geometry) halfVertexUpEdgesParity0(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirNXY, DirNXZ, DirNYZ, DirXYZ:
		return nil
	case DirNXYZ:
		cands = []cand{{AxisXY, -1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirXY:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirXZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirYZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, -1}, {AxisXY, -1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

// createUpEdgesRhombicToric builds the up-edge table for the toric rhombic
// lattice. Full vertices (w=0, even parity) always have all four
// candidates; half vertices (w=1) are valid at both parities, with tables
// symmetric to the bounded case's parity-1/parity-0 split but keyed on
// even parity for the "full" 3-edge direction set (the toric lattice's
// full-vertex parity convention is even, the opposite of bounded's odd
// convention, matching the original's documented parity flip).
func (g *Geometry) createUpEdgesRhombicToric() error {
	g.UpEdges = make(map[SweepDir][][]int, len(AllSweepDirs))
	for _, dir := range AllSweepDirs {
		table := make([][]int, g.NumVertices)
		for v := 0; v < g.NumVertices; v++ {
			c, err := g.IndexToCoordinate(v)
			if err != nil {
				return err
			}
			var edges []int
			if c.W == 0 {
				if (c.X+c.Y+c.Z)%2 == 0 {
					if err := g.toricFullVertexUpEdges(&edges, v, dir); err != nil {
						return err
					}
				}
			} else {
				if (c.X+c.Y+c.Z)%2 == 0 {
					if err := g.toricHalfVertexUpEdgesParity0(&edges, v, dir); err != nil {
						return err
					}
				} else {
					if err := g.toricHalfVertexUpEdgesParity1(&edges, v, dir); err != nil {
						return err
					}
				}
			}
			table[v] = edges
		}
		g.UpEdges[dir] = table
	}
	return nil
}

func (g *Geometry) toricFullVertexUpEdges(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirXYZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, 1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirYZ:
		cands = []cand{{AxisYZ, 1}, {AxisXYZ, 1}, {AxisXY, -1}, {AxisXZ, -1}}
	case DirXZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, 1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirXY:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, 1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirNXYZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, -1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirNYZ:
		cands = []cand{{AxisXY, 1}, {AxisXZ, 1}, {AxisXYZ, -1}, {AxisYZ, -1}}
	case DirNXZ:
		cands = []cand{{AxisXY, 1}, {AxisYZ, 1}, {AxisXYZ, -1}, {AxisXZ, -1}}
	case DirNXY:
		cands = []cand{{AxisXZ, 1}, {AxisYZ, 1}, {AxisXYZ, -1}, {AxisXY, -1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

func (g *Geometry) toricHalfVertexUpEdgesParity0(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirXY, DirXZ, DirYZ, DirNXYZ:
		return nil
	case DirXYZ:
		cands = []cand{{AxisXY, 1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirNXY:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, 1}, {AxisYZ, 1}}
	case DirNXZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXY, 1}, {AxisYZ, 1}}
	case DirNYZ:
		cands = []cand{{AxisXYZ, -1}, {AxisXZ, 1}, {AxisXY, 1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

func (g *Geometry) toricHalfVertexUpEdgesParity1(dst *[]int, v int, dir SweepDir) error {
	type cand struct {
		axis Axis
		sign int
	}
	var cands []cand
	switch dir {
	case DirNXY, DirNXZ, DirNYZ, DirXYZ:
		return nil
	case DirNXYZ:
		cands = []cand{{AxisXY, -1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirXY:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, -1}, {AxisYZ, -1}}
	case DirXZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXY, -1}, {AxisYZ, -1}}
	case DirYZ:
		cands = []cand{{AxisXYZ, 1}, {AxisXZ, -1}, {AxisXY, -1}}
	}
	for _, cd := range cands {
		if err := g.rhombicUpEdgeCandidate(dst, v, cd.axis, cd.sign); err != nil {
			return err
		}
	}
	return nil
}

// createVertexToEdgesRhombicBounded materialises, for every vertex, the
// union of up and down edges over all four rhombic axes (pruning
// out-of-lattice candidates at the boundary).
func (g *Geometry) createVertexToEdgesRhombicBounded() error {
	g.VertexToEdges = make([][]int, g.NumVertices)
	axes := [4]Axis{AxisXYZ, AxisXY, AxisXZ, AxisYZ}
	for v := 0; v < g.NumVertices; v++ {
		c, err := g.IndexToCoordinate(v)
		if err != nil {
			return err
		}
		odd := (c.X+c.Y+c.Z)%2 == 1
		var edges []int
		if c.W == 0 {
			if !odd {
				continue
			}
			for _, sign := range []int{1, -1} {
				for _, axis := range axes {
					if err := g.rhombicUpEdgeCandidate(&edges, v, axis, sign); err != nil {
						return err
					}
				}
			}
		} else {
			faceSign, bodySign := 1, -1
			if !odd {
				faceSign, bodySign = -1, 1
			}
			for _, axis := range [3]Axis{AxisXY, AxisXZ, AxisYZ} {
				if err := g.rhombicUpEdgeCandidate(&edges, v, axis, faceSign); err != nil {
					return err
				}
			}
			if err := g.rhombicUpEdgeCandidate(&edges, v, AxisXYZ, bodySign); err != nil {
				return err
			}
		}
		g.VertexToEdges[v] = edges
	}
	return nil
}

// createVertexToEdgesRhombicToric is the toric analogue, with full vertices
// at even parity instead of odd: w=0 even-parity vertices get all eight
// edges, and w=1 vertices of either parity get their four, each parity
// with its own sign convention.
func (g *Geometry) createVertexToEdgesRhombicToric() error {
	g.VertexToEdges = make([][]int, g.NumVertices)
	axes := [4]Axis{AxisXYZ, AxisXY, AxisXZ, AxisYZ}
	for v := 0; v < g.NumVertices; v++ {
		c, err := g.IndexToCoordinate(v)
		if err != nil {
			return err
		}
		var edges []int
		if c.W == 0 {
			if (c.X+c.Y+c.Z)%2 != 0 {
				g.VertexToEdges[v] = nil
				continue
			}
			for _, sign := range []int{1, -1} {
				for _, axis := range axes {
					if err := g.rhombicUpEdgeCandidate(&edges, v, axis, sign); err != nil {
						return err
					}
				}
			}
		} else if (c.X+c.Y+c.Z)%2 == 0 {
			for _, axis := range [3]Axis{AxisXY, AxisXZ, AxisYZ} {
				if err := g.rhombicUpEdgeCandidate(&edges, v, axis, 1); err != nil {
					return err
				}
			}
			if err := g.rhombicUpEdgeCandidate(&edges, v, AxisXYZ, -1); err != nil {
				return err
			}
		} else {
			for _, axis := range [3]Axis{AxisXY, AxisXZ, AxisYZ} {
				if err := g.rhombicUpEdgeCandidate(&edges, v, axis, -1); err != nil {
					return err
				}
			}
			if err := g.rhombicUpEdgeCandidate(&edges, v, AxisXYZ, 1); err != nil {
				return err
			}
		}
		g.VertexToEdges[v] = edges
	}
	return nil
}
