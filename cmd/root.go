package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/primeiter/primes/trace"
)

var (
	// CLI flags for the run command
	count      int    // Number of primes to print
	below      uint64 // Stop before the first prime greater than this value
	useBig     bool   // Use the arbitrary-precision generator
	traceLevel string // Trace verbosity level
	logLevel   string // Log verbosity level
	configPath string // Optional YAML/TOML defaults file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "primeiter",
	Short: "Lazy, unbounded prime number generator",
}

// runCmd prints primes using parameters from CLI flags and the optional config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print primes in increasing order",
	Run: func(cmd *cobra.Command, args []string) {
		var cfg Config
		if configPath != "" {
			var err error
			cfg, err = LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			applyConfig(cmd, cfg)
		}
		resolveCount(cmd, cfg)

		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q. Valid: none, steps", traceLevel)
		}

		opts := runOptions{
			Count:      count,
			Below:      below,
			Big:        useBig,
			TraceLevel: trace.TraceLevel(traceLevel),
		}
		logrus.Infof("Generating primes with count=%d, below=%d, big=%v, trace=%q",
			opts.Count, opts.Below, opts.Big, opts.TraceLevel)

		startTime := time.Now()
		out := cmd.OutOrStdout()
		gt, err := runPrimes(out, opts)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if gt != nil && gt.Config.Level == trace.TraceLevelSteps {
			printTraceSummary(out, trace.Summarize(gt))
		}

		logrus.Infof("Generation complete in %s.", time.Since(startTime))
	},
}

// applyConfig copies config file values into flags the user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	if cfg.Count != nil && !flags.Changed("count") {
		count = *cfg.Count
	}
	if cfg.Below != nil && !flags.Changed("below") {
		below = *cfg.Below
	}
	if cfg.Big != nil && !flags.Changed("big") {
		useBig = *cfg.Big
	}
	if cfg.Trace != "" && !flags.Changed("trace") {
		traceLevel = cfg.Trace
	}
	if cfg.LogLevel != "" && !flags.Changed("log") {
		logLevel = cfg.LogLevel
	}
}

// resolveCount drops the --count default when --below bounds the run and no
// count was given on the command line or in the config file.
func resolveCount(cmd *cobra.Command, cfg Config) {
	if below > 0 && cfg.Count == nil && !cmd.Flags().Changed("count") {
		count = 0
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&count, "count", 10, "Number of primes to print; ignored when --below is set and --count is not (0 = bounded by --below only)")
	runCmd.Flags().Uint64Var(&below, "below", 0, "Stop before the first prime greater than this value (0 = off)")
	runCmd.Flags().BoolVar(&useBig, "big", false, "Use arbitrary-precision integers")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace verbosity (none, steps)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML or TOML defaults file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
