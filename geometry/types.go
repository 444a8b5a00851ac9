// Package geometry provides, as pure functions of (variant, L), the static
// incidence tables every other component of the decoder consumes: vertex
// and face indexing, neighbour lookup, edge indexing, up-edge maps, and the
// syndrome/sweep vertex subsets.
//
// Rather than a polymorphic Lattice hierarchy (the shape of the original
// source, which overrides neighbour/createFaces/createUpEdgesMap/
// createVertexToEdges per subclass), geometry uses a single Geometry type
// tagged by Variant. Each operation dispatches on the tag internally. This
// flattens the hierarchy, keeps faces/edges/vertices as dense integer ids
// into flat slices (no heap-graph), and makes the boundary-vs-toric branch
// explicit at construction rather than hidden behind virtual dispatch.
package geometry

// Variant names one of the four supported lattice families.
type Variant int

const (
	// RhombicBounded is the body-centred-cubic lattice with open (rough x,
	// smooth y/z) boundaries.
	RhombicBounded Variant = iota
	// RhombicToric is the body-centred-cubic lattice with periodic
	// boundary conditions in all three axes. Requires an even L.
	RhombicToric
	// CubicBounded is the simple cubic lattice with open boundaries.
	CubicBounded
	// CubicToric is the simple cubic lattice with periodic boundaries.
	CubicToric
)

// String renders the variant the way the CLI names it.
func (v Variant) String() string {
	switch v {
	case RhombicBounded:
		return "rhombic_boundaries"
	case RhombicToric:
		return "rhombic_toric"
	case CubicBounded:
		return "cubic_boundaries"
	case CubicToric:
		return "cubic_toric"
	default:
		return "unknown_variant"
	}
}

// IsRhombic reports whether v belongs to the rhombic (two-sublattice)
// family, as opposed to the single-sublattice cubic family.
func (v Variant) IsRhombic() bool {
	return v == RhombicBounded || v == RhombicToric
}

// IsToric reports whether v has periodic rather than open boundaries.
func (v Variant) IsToric() bool {
	return v == RhombicToric || v == CubicToric
}

// Axis names a direction argument to Neighbour and EdgeIndex. The rhombic
// family uses body- and face-diagonal axes; the cubic family uses the three
// coordinate axes.
type Axis string

const (
	AxisXYZ Axis = "xyz"
	AxisXY  Axis = "xy"
	AxisXZ  Axis = "xz"
	AxisYZ  Axis = "yz"
	AxisX   Axis = "x"
	AxisY   Axis = "y"
	AxisZ   Axis = "z"
)

// SweepDir names one of the eight sweep directions a single CA step runs
// in. Unlike Axis, every variant's up-edge map is keyed by the same eight
// labels regardless of family.
type SweepDir string

const (
	DirXYZ  SweepDir = "xyz"
	DirXY   SweepDir = "xy"
	DirXZ   SweepDir = "xz"
	DirYZ   SweepDir = "yz"
	DirNXYZ SweepDir = "-xyz"
	DirNXY  SweepDir = "-xy"
	DirNXZ  SweepDir = "-xz"
	DirNYZ  SweepDir = "-yz"
)

// AllSweepDirs lists the eight sweep directions in the order the original
// enumerates them when building the up-edge map and the default schedule.
var AllSweepDirs = []SweepDir{DirXYZ, DirXY, DirXZ, DirYZ, DirNXYZ, DirNXY, DirNXZ, DirNYZ}

// Coordinate is the 4-tuple (x, y, z, w) identifying a lattice vertex: 0 ≤
// x,y,z < L and w ∈ {0,1}. The bulk sublattice has w=0; the dual
// sublattice (w=1, the rhombic family's "half" vertices) exists only for
// the rhombic family.
type Coordinate struct {
	X, Y, Z, W int
}

// Geometry holds every static incidence table for one (variant, L) pair.
// All fields are populated once at construction and are read-only
// thereafter; no operation here mutates lattice topology.
type Geometry struct {
	Variant     Variant
	L           int
	NumVertices int // 2*L^3 for rhombic, L^3 for cubic
	NumEdges    int // 7*NumVertices, the domain of the edge-index bijection

	// FaceToVertices[f] and FaceToEdges[f] are the four vertex/edge ids
	// spanning face f, each sorted ascending (invariant 1/3 in spec.md §3).
	FaceToVertices [][4]int
	FaceToEdges    [][4]int

	// VertexToFaces[v] lists the ids of faces containing vertex v.
	VertexToFaces [][]int
	// VertexToEdges[v] lists the edge ids incident to vertex v.
	VertexToEdges [][]int

	// UpEdges[dir][v] lists the edges at v that are "up" for sweep
	// direction dir: those whose far endpoint dominates v in dir's partial
	// order. Populated for all eight directions in AllSweepDirs.
	UpEdges map[SweepDir][][]int

	// SyndromeIndices is nil for toric variants (every edge is a valid
	// syndrome position); for bounded variants it holds exactly the edges
	// where a stabilizer is defined.
	SyndromeIndices map[int]struct{}

	// SweepIndices lists, in construction order, the vertices the sweep
	// kernel visits. Toric: every vertex. Bounded: an interior shell.
	SweepIndices []int

	// LogicalZ1/2/3 are face-id lists forming representative logical
	// operators. Bounded variants populate only LogicalZ1.
	LogicalZ1, LogicalZ2, LogicalZ3 []int

	faceVertexIndex map[[4]int]int // sorted-vertex-tuple -> face id, for O(1) FindFace
}

// IsValidSyndromeIndex reports whether edge e carries a defined stabilizer.
// Toric variants answer true for every edge in range; bounded variants
// consult SyndromeIndices.
func (g *Geometry) IsValidSyndromeIndex(e int) bool {
	if g.Variant.IsToric() {
		return e >= 0 && e < g.NumEdges
	}
	_, ok := g.SyndromeIndices[e]
	return ok
}
