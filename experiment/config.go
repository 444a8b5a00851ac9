package experiment

import "github.com/katalvlaran/sweepdecoder/geometry"

// Config holds one shot's worth of experiment parameters, the Go-native
// counterpart of the CLI's ten positional arguments.
type Config struct {
	L                int
	P, Q             float64
	Rounds           int
	Variant          geometry.Variant
	SweepLimit       int
	Schedule         Schedule
	Timeout          int
	Greedy           bool
	CorrelatedErrors bool
}

// ParseVariant maps a CLI latticeType token to the geometry.Variant it
// selects. Only the three variants the original driver's argument parser
// recognises are accepted here; cubic_toric has no CLI entry point even
// though geometry and qcode both support it.
func ParseVariant(s string) (geometry.Variant, error) {
	switch s {
	case "rhombic_toric":
		return geometry.RhombicToric, nil
	case "rhombic_boundaries":
		return geometry.RhombicBounded, nil
	case "cubic_boundaries":
		return geometry.CubicBounded, nil
	default:
		return 0, experimentErrorf("ParseVariant", "invalid lattice type", ErrInvalidArgument)
	}
}
