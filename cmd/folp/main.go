// Command folp is a small CLI exercising the FO-LTL+P pipeline end to
// end: it builds a formula from flags, encodes it to SNF, and optionally
// drives an external SMT backend over the gRPC bridge. It is ambient
// tooling around the library, not a parser or pretty-printer — formulas
// are assembled from named propositions, never parsed from source text.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foltl/foltl/internal/module"
)

var (
	verbose    bool
	configPath string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folp",
	Short: "folp drives the FO-LTL+P pipeline: build, encode, and check formulas",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		module.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a folp.yaml config file")
	rootCmd.AddCommand(encodeCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dialTimeout bounds the demo check command's RPC round trips when the
// config doesn't set one explicitly.
const dialTimeout = 5 * time.Second
