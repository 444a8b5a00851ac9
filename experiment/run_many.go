package experiment

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/rngx"
)

// RunMany drives shots independent shots of cfg over a bounded worker pool,
// one per GOMAXPROCS. Every shot derives its own *rand.Rand from masterSeed
// via rngx.Stream, keyed by shot index, so any single shot's outcome
// reproduces from (masterSeed, index) alone regardless of how many workers
// ran concurrently. The Geometry is built once and shared read-only across
// all shots — every mutable per-shot state lives in a fresh qcode.Code.
func RunMany(cfg Config, shots int, masterSeed int64, logger zerolog.Logger) ([]Result, error) {
	g, err := geometry.New(cfg.Variant, cfg.L)
	if err != nil {
		return nil, err
	}

	results := make([]Result, shots)
	errs := make([]error, shots)

	workers := runtime.GOMAXPROCS(0)
	if workers > shots {
		workers = shots
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, shots)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := rngx.Stream(masterSeed, uint64(i))
				res, err := Run(g, cfg, rng, logger)
				results[i] = res
				errs[i] = err
			}
		}()
	}
	for i := 0; i < shots; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			logger.Error().Err(err).Int("shot", i).Msg("shot failed")
			return results, err
		}
	}
	return results, nil
}
