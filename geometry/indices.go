package geometry

// buildSyndromeIndicesRhombicBounded records which edges carry a defined
// stabilizer on the bounded rhombic lattice, ported literally from
// RhombicCode::buildSyndromeIndices. Only w=0 vertices with odd coordinate
// parity (the bounded full-vertex convention) away from the z=0, y=0 and
// y=L-1 faces contribute, with z=1 and z=L-1 needing a reduced 2-edge set
// and the interior needing all four.
func (g *Geometry) buildSyndromeIndicesRhombicBounded() error {
	g.SyndromeIndices = make(map[int]struct{})
	l := g.L
	insert := func(v int, axis Axis, sign int) error {
		e, err := g.EdgeIndex(v, axis, sign)
		if err != nil {
			return err
		}
		g.SyndromeIndices[e] = struct{}{}
		return nil
	}
	for i := 0; i < l*l*l; i++ {
		c, err := g.IndexToCoordinate(i)
		if err != nil {
			return err
		}
		if c.Z == 0 || c.Y == 0 || c.Y == l-1 {
			continue
		}
		if (c.X+c.Y+c.Z)%2 != 1 {
			continue
		}
		switch {
		case c.Z == 1:
			if c.X != 0 {
				if err := insert(i, AxisYZ, 1); err != nil {
					return err
				}
				if err := insert(i, AxisXY, -1); err != nil {
					return err
				}
			}
			if c.X != l-1 {
				if err := insert(i, AxisXYZ, 1); err != nil {
					return err
				}
				if err := insert(i, AxisXZ, 1); err != nil {
					return err
				}
			}
		case c.Z == l-1:
			if c.X != 0 {
				if err := insert(i, AxisXYZ, -1); err != nil {
					return err
				}
				if err := insert(i, AxisXZ, -1); err != nil {
					return err
				}
			}
			if c.X != l-1 {
				if err := insert(i, AxisYZ, -1); err != nil {
					return err
				}
				if err := insert(i, AxisXY, 1); err != nil {
					return err
				}
			}
		default:
			if c.X != 0 {
				if err := insert(i, AxisXYZ, -1); err != nil {
					return err
				}
				if err := insert(i, AxisXY, -1); err != nil {
					return err
				}
				if err := insert(i, AxisXZ, -1); err != nil {
					return err
				}
				if err := insert(i, AxisYZ, 1); err != nil {
					return err
				}
			}
			if c.X != l-1 {
				if err := insert(i, AxisXYZ, 1); err != nil {
					return err
				}
				if err := insert(i, AxisXY, 1); err != nil {
					return err
				}
				if err := insert(i, AxisXZ, 1); err != nil {
					return err
				}
				if err := insert(i, AxisYZ, -1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// buildSweepIndicesRhombicBounded restricts the sweep walk to the interior
// shell where a legal up-edge can ever be found, ported from
// RhombicCode::buildSweepIndices: w=0 vertices need odd parity and a
// y-margin of one on each side; w=1 vertices need a one-cell margin on
// x, y and z.
func (g *Geometry) buildSweepIndicesRhombicBounded() error {
	l := g.L
	for i := 0; i < 2*l*l*l; i++ {
		c, err := g.IndexToCoordinate(i)
		if err != nil {
			return err
		}
		if c.W == 0 {
			if (c.X+c.Y+c.Z)%2 == 0 {
				continue
			}
			if c.Z >= 1 && c.Z <= l-1 && c.X >= 0 && c.X <= l-1 && c.Y >= 1 && c.Y <= l-2 {
				g.SweepIndices = append(g.SweepIndices, i)
			}
		} else {
			if c.Z >= 1 && c.Z <= l-2 && c.X >= 0 && c.X <= l-2 && c.Y >= 0 && c.Y <= l-2 {
				g.SweepIndices = append(g.SweepIndices, i)
			}
		}
	}
	return nil
}

func (g *Geometry) buildSweepIndicesRhombicToric() {
	g.SweepIndices = make([]int, 2*g.L*g.L*g.L)
	for i := range g.SweepIndices {
		g.SweepIndices[i] = i
	}
}
