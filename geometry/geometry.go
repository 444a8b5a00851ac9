package geometry

import "fmt"

// New builds every static incidence table for the given (variant, L) and
// returns the populated Geometry, or an error if L is unsupported for the
// variant (toric variants require an even L to close consistently; every
// variant requires L large enough to have a non-degenerate interior).
// The bounded rhombic face enumeration covers even L only: an odd L passes
// the size check below, but construction then fails with ErrOutOfLattice.
func New(variant Variant, l int) (*Geometry, error) {
	// Rhombic lattices only need L >= 3 (rhombicLattice.cpp:12: `if (l < 3)
	// throw`); the cubic family needs L > 3 (cubicLattice.cpp:12,
	// cubicToricLattice.cpp:8: `if (l <= 3) throw`), since its boundary
	// faces consume an extra layer the rhombic construction doesn't.
	if variant.IsRhombic() {
		if l < 3 {
			return nil, geometryErrorf("New", fmt.Sprintf("lattice dimension L=%d must be at least three", l), ErrInvalidArgument)
		}
	} else if l <= 3 {
		return nil, geometryErrorf("New", fmt.Sprintf("lattice dimension L=%d must be greater than three", l), ErrInvalidArgument)
	}
	if variant.IsToric() && l%2 != 0 {
		return nil, geometryErrorf("New", fmt.Sprintf("toric variant %s requires an even L, got %d", variant, l), ErrInvalidArgument)
	}

	g := &Geometry{
		Variant: variant,
		L:       l,
	}
	if variant.IsRhombic() {
		g.NumVertices = 2 * l * l * l
	} else {
		g.NumVertices = l * l * l
	}
	g.NumEdges = 7 * g.NumVertices

	g.VertexToFaces = make([][]int, g.NumVertices)
	g.faceVertexIndex = make(map[[4]int]int)

	switch variant {
	case RhombicBounded:
		if err := g.buildSyndromeIndicesRhombicBounded(); err != nil {
			return nil, err
		}
		if err := g.buildSweepIndicesRhombicBounded(); err != nil {
			return nil, err
		}
		if err := g.createFacesRhombicBounded(); err != nil {
			return nil, err
		}
		if err := g.createUpEdgesRhombicBounded(); err != nil {
			return nil, err
		}
		if err := g.createVertexToEdgesRhombicBounded(); err != nil {
			return nil, err
		}
		if err := g.buildLogicalsRhombicBounded(); err != nil {
			return nil, err
		}
	case RhombicToric:
		g.buildSweepIndicesRhombicToric()
		if err := g.createFacesRhombicToric(); err != nil {
			return nil, err
		}
		if err := g.createUpEdgesRhombicToric(); err != nil {
			return nil, err
		}
		if err := g.createVertexToEdgesRhombicToric(); err != nil {
			return nil, err
		}
		if err := g.buildLogicalsRhombicToric(); err != nil {
			return nil, err
		}
	case CubicBounded:
		if err := g.buildSyndromeIndicesCubicBounded(); err != nil {
			return nil, err
		}
		if err := g.buildSweepIndicesCubicBounded(); err != nil {
			return nil, err
		}
		if err := g.createFacesCubicBounded(); err != nil {
			return nil, err
		}
		if err := g.createUpEdgesCubicBounded(); err != nil {
			return nil, err
		}
		if err := g.createVertexToEdgesCubicBounded(); err != nil {
			return nil, err
		}
		if err := g.buildLogicalsCubic(); err != nil {
			return nil, err
		}
	case CubicToric:
		g.buildSweepIndicesCubicToric()
		if err := g.createFacesCubicToric(); err != nil {
			return nil, err
		}
		if err := g.createUpEdgesCubicToric(); err != nil {
			return nil, err
		}
		if err := g.createVertexToEdgesCubicToric(); err != nil {
			return nil, err
		}
		if err := g.buildLogicalsCubic(); err != nil {
			return nil, err
		}
	default:
		return nil, geometryErrorf("New", "unknown variant", ErrInvalidArgument)
	}

	return g, nil
}
