// Package qcode holds the mutable simulation state for one Monte-Carlo
// shot: the current error set, the measured syndrome, the sweep scratch
// buffer, and the sweep-rule CA step itself. The static incidence tables it
// reads are owned by geometry.Geometry and never mutated here.
package qcode

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a precondition violation: a probability
// outside [0,1], or a face recipe whose second and third directions differ.
var ErrInvalidArgument = errors.New("qcode: invalid argument")

// ErrInvariantViolation reports that the sweep kernel found a geometry
// state it cannot interpret (more up-edges than the variant's rule
// permits, or an up-edge set belonging to no recognised direction triple).
// This must never happen for a correctly built Geometry and always
// propagates rather than being silently pruned.
var ErrInvariantViolation = errors.New("qcode: invariant violation")

func qcodeErrorf(method, detail string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}
