// errors.go — sentinel errors for the geometry package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via %w through geometryErrorf.
//   - ErrInvalidArgument and ErrOutOfLattice are recoverable: sweep-kernel
//     callers (findSweepEdges, faceVertices, createUpEdgesMap) filter on
//     them to prune candidates that do not exist in a given variant, the
//     same role the original's try/catch plays around neighbour/edgeIndex.
//   - ErrNotAFace is recoverable in the same way around FindFace callers.
//   - ErrInvariantViolation is not: it means the geometry itself is
//     inconsistent and must propagate to the caller rather than be pruned.
package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a precondition violation on a public geometry
// operation: a malformed index, an out-of-range coordinate, a sign other
// than ±1, or an axis that does not apply to the active variant.
var ErrInvalidArgument = errors.New("geometry: invalid argument")

// ErrOutOfLattice reports that a neighbour/edge lookup would leave the
// bounded lattice. Toric variants never return this error since every
// coordinate wraps modulo L.
var ErrOutOfLattice = errors.New("geometry: coordinate outside bounded lattice")

// ErrNotAFace reports that FindFace was given four vertices that do not
// span any enumerated face.
var ErrNotAFace = errors.New("geometry: vertices do not correspond to a face")

// ErrInvariantViolation reports a geometry bug: an up-edge set, a face
// enumeration, or a direction table produced a state the sweep kernel
// cannot interpret. This must never happen under correct geometry and is
// never caught by a filter — it propagates to the caller.
var ErrInvariantViolation = errors.New("geometry: invariant violation")

// geometryErrorf wraps a sentinel with call-site context, of the form
// "<method>: <detail>: <sentinel>".
func geometryErrorf(method, detail string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}

// isPrunable reports whether err is a candidate-lookup failure that table
// builders should silently drop rather than propagate — the Go analogue of
// the original's try/catch around neighbour/edgeIndex probes at a bounded
// boundary.
func isPrunable(err error) bool {
	return errors.Is(err, ErrOutOfLattice) || errors.Is(err, ErrInvalidArgument)
}
