package geometry

// buildLogicalsRhombicBounded constructs LogicalZ1 as an alternating chain
// of faces along x at (x,0,1,0), ported from RhombicCode::buildLogicals's
// boundaries branch: one face per even i, plus a second face for i != 0.
func (g *Geometry) buildLogicalsRhombicBounded() error {
	l := g.L
	for i := 0; i < l; i += 2 {
		v, err := g.CoordinateToIndex(Coordinate{X: i, Y: 0, Z: 1, W: 0})
		if err != nil {
			return err
		}
		nv, err := g.Neighbour(v, AxisXYZ, 1)
		if err != nil {
			return err
		}
		a, err := g.Neighbour(v, AxisXY, 1)
		if err != nil {
			return err
		}
		b, err := g.Neighbour(nv, AxisXY, 1)
		if err != nil {
			return err
		}
		id, err := g.FindFace([4]int{v, nv, a, b})
		if err != nil {
			return err
		}
		g.LogicalZ1 = append(g.LogicalZ1, id)

		if i != 0 {
			nv2, err := g.Neighbour(v, AxisYZ, 1)
			if err != nil {
				return err
			}
			a2, err := g.Neighbour(v, AxisXZ, -1)
			if err != nil {
				return err
			}
			b2, err := g.Neighbour(nv2, AxisXZ, -1)
			if err != nil {
				return err
			}
			id2, err := g.FindFace([4]int{v, nv2, a2, b2})
			if err != nil {
				return err
			}
			g.LogicalZ1 = append(g.LogicalZ1, id2)
		}
	}
	return nil
}

// buildLogicalsRhombicToric constructs all three logical operator chains,
// each running along one coordinate axis, two faces per even step, ported
// from RhombicCode::buildLogicals's toric branch.
func (g *Geometry) buildLogicalsRhombicToric() error {
	l := g.L

	appendPair := func(dst *[]int, v int, dir1 Axis, sign1 int, dir2 Axis, sign2 int, other1 Axis, otherSign1 int, other2 Axis, otherSign2 int) error {
		nv, err := g.Neighbour(v, dir1, sign1)
		if err != nil {
			return err
		}
		a, err := g.Neighbour(v, other1, otherSign1)
		if err != nil {
			return err
		}
		b, err := g.Neighbour(nv, other1, otherSign1)
		if err != nil {
			return err
		}
		id, err := g.FindFace([4]int{v, nv, a, b})
		if err != nil {
			return err
		}
		*dst = append(*dst, id)

		nv2, err := g.Neighbour(v, dir2, sign2)
		if err != nil {
			return err
		}
		a2, err := g.Neighbour(v, other2, otherSign2)
		if err != nil {
			return err
		}
		b2, err := g.Neighbour(nv2, other2, otherSign2)
		if err != nil {
			return err
		}
		id2, err := g.FindFace([4]int{v, nv2, a2, b2})
		if err != nil {
			return err
		}
		*dst = append(*dst, id2)
		return nil
	}

	for i := 0; i < l; i += 2 {
		v, err := g.CoordinateToIndex(Coordinate{X: i, Y: 0, Z: 0, W: 0})
		if err != nil {
			return err
		}
		if err := appendPair(&g.LogicalZ1, v, AxisXZ, -1, AxisXY, 1, AxisXYZ, -1, AxisYZ, -1); err != nil {
			return err
		}
	}
	for i := 0; i < l; i += 2 {
		v, err := g.CoordinateToIndex(Coordinate{X: 0, Y: i, Z: 0, W: 0})
		if err != nil {
			return err
		}
		if err := appendPair(&g.LogicalZ2, v, AxisYZ, -1, AxisXY, 1, AxisXYZ, -1, AxisXZ, -1); err != nil {
			return err
		}
	}
	for i := 0; i < l; i += 2 {
		v, err := g.CoordinateToIndex(Coordinate{X: 0, Y: 0, Z: i, W: 0})
		if err != nil {
			return err
		}
		if err := appendPair(&g.LogicalZ3, v, AxisXZ, -1, AxisYZ, 1, AxisXYZ, -1, AxisXY, -1); err != nil {
			return err
		}
	}
	return nil
}
