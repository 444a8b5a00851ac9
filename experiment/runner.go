package experiment

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/qcode"
)

// Result is one shot's outcome: whether the decoder's final correction
// matched the true error class, whether the syndrome converged to all-zero
// before the timeout elapsed, and how long the shot took.
type Result struct {
	Succeeded     bool
	CleanSyndrome bool
	Elapsed       time.Duration
}

// Run executes one full decoding shot on g: cfg.Rounds main rounds of
// (inject, measure, sweep), one readout round, then up to cfg.Timeout
// further sweeps waiting for a clean syndrome. This unifies what the
// original split into runToric/runBoundaries: geometry already carries the
// bounded-vs-toric distinction in SweepIndices/IsValidSyndromeIndex/
// LogicalZ2/3, so a single loop drives every variant correctly, including
// rhombic_toric without the boundary-path bug.
func Run(g *geometry.Geometry, cfg Config, rng *rand.Rand, logger zerolog.Logger) (Result, error) {
	start := time.Now()

	var model qcode.DataErrorModel = qcode.IndependentModel{}
	if cfg.CorrelatedErrors {
		model = qcode.NewClusterModel(g.VertexToFaces)
	}
	code, err := qcode.New(g, cfg.P, cfg.Q, model, rng)
	if err != nil {
		return Result{}, err
	}

	picker, err := NewPicker(cfg.Schedule, rng)
	if err != nil {
		return Result{}, err
	}

	for r := 0; r < cfg.Rounds; r++ {
		code.GenerateDataError()
		code.CalculateSyndrome()
		if cfg.Q > 0 {
			code.GenerateMeasError()
		}
		dir := picker.NextDirection(cfg.SweepLimit)
		if err := code.Step(dir, cfg.Greedy); err != nil {
			logger.Error().Err(err).Int("round", r).Str("direction", string(dir)).Msg("sweep step failed")
			return Result{}, err
		}
	}

	// Data errors = measurement errors at readout.
	code.GenerateDataError()
	code.CalculateSyndrome()

	var res Result
	for r := 0; r < cfg.Timeout; r++ {
		dir := picker.NextDirection(g.L)
		if err := code.Step(dir, cfg.Greedy); err != nil {
			logger.Error().Err(err).Int("timeoutRound", r).Str("direction", string(dir)).Msg("sweep step failed")
			return Result{}, err
		}
		code.CalculateSyndrome()
		if syndromeClean(code.Syndrome) {
			res.Succeeded = code.CheckCorrection()
			res.CleanSyndrome = true
			break
		}
	}
	if !res.CleanSyndrome {
		logger.Warn().Int("l", g.L).Int("timeout", cfg.Timeout).Msg("syndrome did not converge within timeout")
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func syndromeClean(syndrome []int8) bool {
	for _, b := range syndrome {
		if b != 0 {
			return false
		}
	}
	return true
}
