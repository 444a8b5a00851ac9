package geometry

import "sort"

// slot returns the fixed direction-slot convention used to build edge
// indices: edgeIndex = 7*canonicalVertex + slot(axis). The numbering is an
// arbitrary but fixed convention inherited unchanged from the original.
func slot(axis Axis) (int, error) {
	switch axis {
	case AxisXYZ:
		return 0, nil
	case AxisX:
		return 1, nil
	case AxisXY:
		return 2, nil
	case AxisY:
		return 3, nil
	case AxisYZ:
		return 4, nil
	case AxisZ:
		return 5, nil
	case AxisXZ:
		return 6, nil
	default:
		return 0, geometryErrorf("slot", "unknown axis", ErrInvalidArgument)
	}
}

// EdgeIndex returns the index of the edge leaving v along axis in the
// given sign. The canonical endpoint is v itself for sign>0 (after
// confirming the +1 neighbour exists, so a dangling edge at a bounded
// boundary is rejected the same way whether queried from either end) and
// the -1 neighbour of v for sign<0, giving each undirected edge a single
// index regardless of which endpoint it is queried from.
func (g *Geometry) EdgeIndex(v int, axis Axis, sign int) (int, error) {
	if sign != 1 && sign != -1 {
		return 0, geometryErrorf("EdgeIndex", "sign must be +1 or -1", ErrInvalidArgument)
	}
	s, err := slot(axis)
	if err != nil {
		return 0, err
	}

	var canonical int
	if sign < 0 {
		canonical, err = g.Neighbour(v, axis, sign)
		if err != nil {
			return 0, err
		}
	} else {
		// Confirm the +1 neighbour exists (rejects a dangling edge at a
		// bounded boundary) without using it as the canonical endpoint.
		if _, err = g.Neighbour(v, axis, sign); err != nil {
			return 0, err
		}
		canonical = v
	}
	return 7*canonical + s, nil
}

// addFace traverses the closed 4-cycle starting at v along the given
// directions/signs, records its four vertices (sorted ascending) and four
// edges (sorted ascending) as face faceID, and registers the face against
// each of its vertices.
func (g *Geometry) addFace(v, faceID int, dirs [4]Axis, signs [4]int) error {
	// vb is "neighbourVertex" in the original: v's neighbour along dirs[0].
	// vc is v's neighbour along dirs[1] (not chained off vb). vd is vb's
	// neighbour along dirs[2]. The closing edge, dirs[3], is measured from
	// vc — not from vd — matching the original's addFace exactly.
	vb, err := g.Neighbour(v, dirs[0], signs[0])
	if err != nil {
		return err
	}
	vc, err := g.Neighbour(v, dirs[1], signs[1])
	if err != nil {
		return err
	}
	vd, err := g.Neighbour(vb, dirs[2], signs[2])
	if err != nil {
		return err
	}

	verts := [4]int{v, vb, vc, vd}
	e0, err := g.EdgeIndex(v, dirs[0], signs[0])
	if err != nil {
		return err
	}
	e1, err := g.EdgeIndex(v, dirs[1], signs[1])
	if err != nil {
		return err
	}
	e2, err := g.EdgeIndex(vb, dirs[2], signs[2])
	if err != nil {
		return err
	}
	e3, err := g.EdgeIndex(vc, dirs[3], signs[3])
	if err != nil {
		return err
	}
	edges := [4]int{e0, e1, e2, e3}

	sort.Ints(verts[:])
	sort.Ints(edges[:])

	g.FaceToVertices = append(g.FaceToVertices, verts)
	g.FaceToEdges = append(g.FaceToEdges, edges)
	for _, vv := range verts {
		g.VertexToFaces[vv] = append(g.VertexToFaces[vv], faceID)
	}
	g.faceVertexIndex[verts] = faceID
	return nil
}

// FindFace looks up the face spanning exactly the given four vertices. The
// original performs a linear scan over vertexToFaces[vertices[0]]; here a
// hash map keyed on the sorted vertex tuple is built once at construction
// (spec.md §9's hash-map hint for L≥10), making lookup O(1).
func (g *Geometry) FindFace(vertices [4]int) (int, error) {
	sorted := vertices
	sort.Ints(sorted[:])
	id, ok := g.faceVertexIndex[sorted]
	if !ok {
		return 0, geometryErrorf("FindFace", "vertices do not span a face", ErrNotAFace)
	}
	return id, nil
}
