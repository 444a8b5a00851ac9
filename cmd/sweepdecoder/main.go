// Command sweepdecoder runs a single Monte-Carlo sweep-decoder shot and
// prints its outcome as a single stdout line, matching the original
// driver's positional-argument contract and output format exactly.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sweepdecoder/experiment"
	"github.com/katalvlaran/sweepdecoder/geometry"
	"github.com/katalvlaran/sweepdecoder/rngx"
)

var (
	verbose bool
	jsonLog bool
)

var rootCmd = &cobra.Command{
	Use:   "sweepdecoder L p q rounds latticeType sweepLimit sweepSchedule timeout greedy correlatedErrors",
	Short: "Run one sweep-rule CA decoding shot on a 3D topological stabilizer lattice",
	Long: `sweepdecoder runs a single decoding round loop on a rhombic (BCC) or
cubic lattice, toric or bounded, and prints "decode_succeeded, clean_syndrome,
elapsed_seconds" on one stdout line.`,
	Args: cobra.ExactArgs(10),
	RunE: runShot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics at debug level")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit diagnostics as JSON instead of console text")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var logger zerolog.Logger
	if jsonLog {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return logger.Level(level)
}

func runShot(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := parseConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	g, err := geometry.New(cfg.Variant, cfg.L)
	if err != nil {
		logger.Error().Err(err).Msg("geometry construction failed")
		return err
	}

	seed := rngx.MasterSeed()
	rng := rngx.Stream(seed, 0)

	result, err := experiment.Run(g, cfg, rng, logger)
	if err != nil {
		logger.Error().Err(err).Msg("shot failed")
		return err
	}

	fmt.Printf("%d, %d, %g\n", boolToInt(result.Succeeded), boolToInt(result.CleanSyndrome), result.Elapsed.Seconds())
	return nil
}

func parseConfig(args []string) (experiment.Config, error) {
	l, err := strconv.Atoi(args[0])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid L: %w", err)
	}
	p, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid p: %w", err)
	}
	q, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid q: %w", err)
	}
	rounds, err := strconv.Atoi(args[3])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid rounds: %w", err)
	}
	variant, err := experiment.ParseVariant(args[4])
	if err != nil {
		return experiment.Config{}, err
	}
	sweepLimit, err := strconv.Atoi(args[5])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid sweepLimit: %w", err)
	}
	schedule, err := experiment.ParseSchedule(args[6])
	if err != nil {
		return experiment.Config{}, err
	}
	timeout, err := strconv.Atoi(args[7])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid timeout: %w", err)
	}
	greedy, err := strconv.ParseBool(args[8])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid greedy (boolean): %w", err)
	}
	correlated, err := strconv.ParseBool(args[9])
	if err != nil {
		return experiment.Config{}, fmt.Errorf("invalid correlatedErrors (boolean): %w", err)
	}

	return experiment.Config{
		L:                l,
		P:                p,
		Q:                q,
		Rounds:           rounds,
		Variant:          variant,
		SweepLimit:       sweepLimit,
		Schedule:         schedule,
		Timeout:          timeout,
		Greedy:           greedy,
		CorrelatedErrors: correlated,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
