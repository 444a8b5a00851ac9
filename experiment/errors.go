// Package experiment implements the Monte-Carlo decoding round loop: fault
// injection, sweep-direction scheduling, timeout-phase correction, and
// independent-shot aggregation. It is the one layer above qcode that knows
// about "rounds", "schedules", and "shots" — qcode itself knows only a
// single sweep step.
package experiment

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a malformed Config: an unknown lattice type or
// an unknown sweep schedule. Out-of-range probabilities are rejected by
// qcode.New with qcode.ErrInvalidArgument.
var ErrInvalidArgument = errors.New("experiment: invalid argument")

func experimentErrorf(method, detail string, sentinel error) error {
	return fmt.Errorf("experiment.%s: %w: %s", method, sentinel, detail)
}
